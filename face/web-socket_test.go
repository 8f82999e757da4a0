/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/paNjii/NFD/face"
	"github.com/paNjii/NFD/ndn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketListenerConfig(t *testing.T) {
	cfg := face.WebSocketListenerConfig{Bind: "127.0.0.1", Port: 9696}
	assert.Equal(t, "ws://127.0.0.1:9696", cfg.URL().String())
	assert.Equal(t, "WebSocket listener at ws://127.0.0.1:9696", cfg.String())
	cfg.TLSEnabled = true
	assert.Equal(t, "wss", cfg.URL().Scheme)
}

func TestWebSocketRoundTrip(t *testing.T) {
	table := face.NewTable()
	accepted := make(chan face.Transport, 1)
	table.OnFaceAdded(func(f face.Transport) { accepted <- f })

	listener, err := face.NewWebSocketListener(face.WebSocketListenerConfig{Bind: "127.0.0.1", Port: 0}, table)
	require.NoError(t, err)
	server := httptest.NewServer(listener)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := face.DialWebSocket(ctx, "ws"+strings.TrimPrefix(server.URL, "http"))
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, ndn.Local, client.Scope())

	var serverFace face.Transport
	select {
	case serverFace = <-accepted:
	case <-ctx.Done():
		t.Fatal("no face accepted")
	}
	assert.Equal(t, ndn.Local, serverFace.Scope())
	assert.Equal(t, "wsclient", serverFace.RemoteURI().Scheme())

	require.NoError(t, client.Send([]byte{0x05, 0x03, 0x07, 0x01, 0x08}))
	frame, err := serverFace.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x03, 0x07, 0x01, 0x08}, frame)

	require.NoError(t, serverFace.Send([]byte{0x06, 0x00}))
	frame, err = client.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06, 0x00}, frame)

	// The server face goes down and leaves the table when the client disconnects
	require.NoError(t, client.Close())
	_, err = serverFace.Receive(ctx)
	assert.ErrorIs(t, err, face.ErrFaceDown)
	assert.Eventually(t, func() bool { return table.Len() == 0 }, 5*time.Second, 10*time.Millisecond)
}
