/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	ResetConfig()
	assert.Equal(t, 8000, GetConfigIntDefault("mgmt.max_segment_size", 8000))
	assert.Equal(t, "/localhost/nfd", GetConfigStringDefault("mgmt.prefix", "/localhost/nfd"))
	assert.Equal(t, uint16(9696), GetConfigUint16Default("faces.websocket.port", 9696))
	assert.True(t, GetConfigBoolDefault("faces.websocket.enabled", true))
}

func TestConfigLoadString(t *testing.T) {
	defer ResetConfig()
	require.NoError(t, LoadConfigString(`
[core]
log_level = "DEBUG"

[mgmt]
prefix = "/localhost/test"
max_segment_size = 100

[faces.websocket]
enabled = false
port = 70000
`))
	assert.Equal(t, "DEBUG", GetConfigStringDefault("core.log_level", "INFO"))
	assert.Equal(t, "/localhost/test", GetConfigStringDefault("mgmt.prefix", "/localhost/nfd"))
	assert.Equal(t, 100, GetConfigIntDefault("mgmt.max_segment_size", 8000))
	assert.False(t, GetConfigBoolDefault("faces.websocket.enabled", true))
	// Out of range for uint16
	assert.Equal(t, uint16(9696), GetConfigUint16Default("faces.websocket.port", 9696))
	// Wrong type
	assert.Equal(t, 5, GetConfigIntDefault("mgmt.prefix", 5))
}

func TestConfigLoadInvalid(t *testing.T) {
	defer ResetConfig()
	assert.Error(t, LoadConfigString("[core\nlog_level="))
	assert.Error(t, LoadConfig("/nonexistent/ndnd.toml"))
}

func TestGenerateLogMessage(t *testing.T) {
	msg := generateLogMessage("FIB", "Inserted ", uint64(3), " nexthops, ok=", true)
	assert.Equal(t, "[FIB] Inserted 3 nexthops, ok=true", msg)
}
