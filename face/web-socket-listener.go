/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/ndn"
)

// WebSocketListenerConfig contains WebSocketListener configuration.
type WebSocketListenerConfig struct {
	Enabled    bool
	Bind       string
	Port       uint16
	TLSEnabled bool
	TLSCert    string
	TLSKey     string
}

// URL returns the URL the listener serves.
func (cfg WebSocketListenerConfig) URL() *url.URL {
	addr := net.JoinHostPort(cfg.Bind, strconv.FormatUint(uint64(cfg.Port), 10))
	u := &url.URL{
		Scheme: "ws",
		Host:   addr,
	}
	if cfg.TLSEnabled {
		u.Scheme = "wss"
	}
	return u
}

func (cfg WebSocketListenerConfig) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "WebSocket listener at %s", cfg.URL())
	if cfg.TLSEnabled {
		fmt.Fprintf(&b, " with TLS cert %s and key %s", cfg.TLSCert, cfg.TLSKey)
	}
	return b.String()
}

// WebSocketListener listens for incoming WebSocket connections and registers a face for each of them.
type WebSocketListener struct {
	server   http.Server
	upgrader websocket.Upgrader
	localURI *ndn.URI
	table    *Table
}

// NewWebSocketListener creates a listener that registers accepted faces in the specified face table.
func NewWebSocketListener(cfg WebSocketListenerConfig, table *Table) (*WebSocketListener, error) {
	localURL := cfg.URL()
	l := &WebSocketListener{
		server: http.Server{Addr: localURL.Host},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		localURI: ndn.MakeWebSocketServerFaceURI(localURL),
		table:    table,
	}
	if cfg.TLSEnabled {
		cert, e := tls.LoadX509KeyPair(cfg.TLSCert, cfg.TLSKey)
		if e != nil {
			return nil, fmt.Errorf("tls.LoadX509KeyPair(%s %s): %w", cfg.TLSCert, cfg.TLSKey, e)
		}
		l.server.TLSConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}
	l.server.Handler = l
	return l, nil
}

func (l *WebSocketListener) String() string {
	return "WebSocketListener, " + l.localURI.String()
}

// Run serves until the listener is closed.
func (l *WebSocketListener) Run() {
	var err error
	if l.server.TLSConfig == nil {
		err = l.server.ListenAndServe()
	} else {
		err = l.server.ListenAndServeTLS("", "")
	}
	if !errors.Is(err, http.ErrServerClosed) {
		core.LogFatal(l, "Unable to start listener: ", err)
	}
}

// ServeHTTP upgrades the request to a WebSocket and registers a face for it.
func (l *WebSocketListener) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, e := l.upgrader.Upgrade(w, r, nil)
	if e != nil {
		core.LogWarn(l, "Unable to upgrade connection from ", r.RemoteAddr, ": ", e)
		return
	}

	newTransport := NewWebSocketTransport(l.localURI, c)
	l.table.Add(newTransport)
	core.LogInfo(l, "Accepting new WebSocket face ", newTransport.RemoteURI())
}

// Close stops the listener. Faces already accepted stay up.
func (l *WebSocketListener) Close() {
	core.LogInfo(l, "Stopping listener")
	l.server.Shutdown(context.TODO())
}
