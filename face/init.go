/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import "github.com/paNjii/NFD/core"

// faceQueueSize is the maximum number of received packets that can be buffered on a face.
var faceQueueSize = 1024

// WebSocketConfig is the configuration of the WebSocket listener.
var WebSocketConfig WebSocketListenerConfig

// Configure configures the face system.
func Configure() {
	faceQueueSize = core.GetConfigIntDefault("faces.queue_size", 1024)
	WebSocketConfig = WebSocketListenerConfig{
		Enabled:    core.GetConfigBoolDefault("faces.websocket.enabled", true),
		Bind:       core.GetConfigStringDefault("faces.websocket.bind", ""),
		Port:       core.GetConfigUint16Default("faces.websocket.port", 9696),
		TLSEnabled: core.GetConfigBoolDefault("faces.websocket.tls.enabled", false),
		TLSCert:    core.GetConfigStringDefault("faces.websocket.tls.certificate", ""),
		TLSKey:     core.GetConfigStringDefault("faces.websocket.tls.key", ""),
	}
}
