/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn_test

import (
	"net"
	"net/url"
	"testing"

	"github.com/paNjii/NFD/ndn"
	"github.com/stretchr/testify/assert"
)

func TestInternalURI(t *testing.T) {
	uri := ndn.MakeInternalFaceURI()
	assert.Equal(t, "internal", uri.Scheme())
	assert.Equal(t, "internal://", uri.String())
	assert.Equal(t, ndn.Local, uri.Scope())
}

func TestWebSocketURI(t *testing.T) {
	u, _ := url.Parse("ws://127.0.0.1:9696")
	uri := ndn.MakeWebSocketServerFaceURI(u)
	assert.Equal(t, "ws", uri.Scheme())
	assert.Equal(t, "127.0.0.1", uri.PathHost())
	assert.Equal(t, uint16(9696), uri.Port())
	assert.Equal(t, "ws://127.0.0.1:9696", uri.String())
	assert.Equal(t, ndn.Local, uri.Scope())

	uri = ndn.MakeWebSocketClientFaceURI(&net.TCPAddr{IP: net.ParseIP("192.0.2.1"), Port: 50000})
	assert.Equal(t, "wsclient://192.0.2.1:50000", uri.String())
	assert.Equal(t, ndn.NonLocal, uri.Scope())
	assert.Equal(t, "non-local", uri.Scope().String())

	uri = ndn.MakeWebSocketClientFaceURI(&net.TCPAddr{IP: net.ParseIP("::1"), Port: 1})
	assert.Equal(t, "wsclient://[::1]:1", uri.String())
	assert.Equal(t, ndn.Local, uri.Scope())
}
