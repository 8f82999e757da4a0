/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package ndn

import (
	"net"
	"net/url"
	"strconv"
)

// URIType represents the type of the URI.
type URIType int

const (
	unknownURI URIType = iota
	internalURI
	wsURI
	wsclientURI
)

// Scope indicates whether a face is local or non-local.
type Scope int

const (
	// Unknown is an invalid or unknown scope.
	Unknown Scope = iota - 1
	// NonLocal is a face that communicates with another host.
	NonLocal
	// Local is a face that communicates with an application on the same host.
	Local
)

func (s Scope) String() string {
	switch s {
	case NonLocal:
		return "non-local"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// URI represents a URI for a face.
type URI struct {
	uriType URIType
	scheme  string
	path    string
	port    uint16
}

// MakeInternalFaceURI constructs an internal face URI.
func MakeInternalFaceURI() *URI {
	return &URI{uriType: internalURI, scheme: "internal"}
}

// MakeWebSocketServerFaceURI constructs a URI for a WebSocket server.
func MakeWebSocketServerFaceURI(u *url.URL) *URI {
	port, _ := strconv.ParseUint(u.Port(), 10, 16)
	return &URI{
		uriType: wsURI,
		scheme:  u.Scheme,
		path:    u.Hostname(),
		port:    uint16(port),
	}
}

// MakeWebSocketClientFaceURI constructs a URI for a client connected to a WebSocket server.
func MakeWebSocketClientFaceURI(addr net.Addr) *URI {
	host, portStr, _ := net.SplitHostPort(addr.String())
	port, _ := strconv.ParseUint(portStr, 10, 16)
	return &URI{
		uriType: wsclientURI,
		scheme:  "wsclient",
		path:    host,
		port:    uint16(port),
	}
}

// Scheme returns the scheme of the URI.
func (u *URI) Scheme() string {
	return u.scheme
}

// PathHost returns the host component of the path of the URI.
func (u *URI) PathHost() string {
	return u.path
}

// Port returns the port of the URI.
func (u *URI) Port() uint16 {
	return u.port
}

// Scope returns the scope of the URI.
func (u *URI) Scope() Scope {
	switch u.uriType {
	case internalURI:
		return Local
	case wsURI, wsclientURI:
		if ip := net.ParseIP(u.path); ip != nil && ip.IsLoopback() {
			return Local
		}
		if u.path == "localhost" {
			return Local
		}
		return NonLocal
	}
	return Unknown
}

func (u *URI) String() string {
	switch u.uriType {
	case internalURI:
		return "internal://"
	case wsURI, wsclientURI:
		return u.scheme + "://" + net.JoinHostPort(u.path, strconv.FormatUint(uint64(u.port), 10))
	default:
		return "unknown://"
	}
}
