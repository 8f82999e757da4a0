/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/tlv"
)

// WebSocketTransport communicates with web applications via WebSocket.
type WebSocketTransport struct {
	transportBase
	c *websocket.Conn
	// gorilla/websocket supports one concurrent writer
	sendMutex sync.Mutex
}

var _ Transport = &WebSocketTransport{}

// NewWebSocketTransport creates a transport for a connection accepted by a WebSocket server.
func NewWebSocketTransport(localURI *ndn.URI, c *websocket.Conn) *WebSocketTransport {
	remoteURI := ndn.MakeWebSocketClientFaceURI(c.RemoteAddr())
	t := &WebSocketTransport{c: c}
	t.makeTransportBase(remoteURI, localURI, remoteURI.Scope(), tlv.MaxNDNPacketSize)
	go t.runReceive()
	return t
}

// DialWebSocket connects to a WebSocket server, such as the forwarder's WebSocket listener.
func DialWebSocket(ctx context.Context, serverURL string) (*WebSocketTransport, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}
	c, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, err
	}

	remoteURI := ndn.MakeWebSocketServerFaceURI(u)
	t := &WebSocketTransport{c: c}
	t.makeTransportBase(remoteURI, ndn.MakeWebSocketClientFaceURI(c.LocalAddr()), remoteURI.Scope(), tlv.MaxNDNPacketSize)
	go t.runReceive()
	return t, nil
}

func (t *WebSocketTransport) String() string {
	return "WebSocketTransport, FaceID=" + strconv.FormatUint(t.FaceID(), 10) + ", RemoteURI=" + t.remoteURI.String() + ", LocalURI=" + t.localURI.String()
}

// Send transmits the packet as a single binary message.
func (t *WebSocketTransport) Send(frame []byte) error {
	if t.State() != Up {
		return ErrFaceDown
	}
	if len(frame) > t.MTU() {
		core.LogWarn(t, "Attempted to send frame larger than MTU - DROP")
		return ErrFrameTooLarge
	}

	core.LogDebug(t, "Sending frame of size ", len(frame))
	t.sendMutex.Lock()
	e := t.c.WriteMessage(websocket.BinaryMessage, frame)
	t.sendMutex.Unlock()
	if e != nil {
		core.LogWarn(t, "Unable to send on socket - DROP and Face DOWN")
		t.Close()
		return e
	}

	t.nOutBytes.Add(uint64(len(frame)))
	return nil
}

func (t *WebSocketTransport) runReceive() {
	core.LogTrace(t, "Starting receive thread")

	for {
		mt, message, e := t.c.ReadMessage()
		if e != nil {
			if t.State() == Up {
				core.LogWarn(t, "Unable to read from socket (", e, ") - DROP and Face DOWN")
			}
			t.Close()
			return
		}

		if mt != websocket.BinaryMessage {
			core.LogWarn(t, "Ignored non-binary message")
			continue
		}

		core.LogTrace(t, "Receive of size ", len(message))
		if len(message) > tlv.MaxNDNPacketSize {
			core.LogWarn(t, "Received too much data without valid TLV block - DROP")
			continue
		}
		t.deliver(message)
	}
}

// Close closes the socket and brings the face down.
func (t *WebSocketTransport) Close() error {
	if !t.goDown(t) {
		return nil
	}
	core.LogInfo(t, "Closing WebSocket")
	return t.c.Close()
}
