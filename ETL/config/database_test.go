package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDatabasesStagingInalcanzable(t *testing.T) {
	cfg := DefaultETLConfig
	cfg.StagingConfig.Host = "127.0.0.1"
	cfg.StagingConfig.Port = 1
	cfg.DatamartPath = filepath.Join(t.TempDir(), "datamart.sqlite")

	// Con el staging caído no debe quedar ningún pool abierto a medias
	connections, err := ConnectDatabases(cfg)
	require.Error(t, err)
	assert.Nil(t, connections)
	assert.Contains(t, err.Error(), "staging")
}
