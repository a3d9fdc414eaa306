package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNodeConfigFile(t *testing.T) {
	a := assert.New(t)
	dir, err := ioutil.TempDir("", "paygate-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := DefaultNodeConfig
	cfg.Name = "paygated"
	cfg.DataDir = dir
	cfg.Ledger.RPCEndpoint = "http://127.0.0.1:8899"
	cfg.Signer.SecretKey = "never-written"

	require.NoError(t, WriteNodeConfigFile(dir, "config.toml", cfg, 0600))

	raw, err := ioutil.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	a.NotContains(string(raw), "never-written")

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, v.ReadInConfig())
	a.Equal("http://127.0.0.1:8899", v.GetString("Ledger.RPCEndpoint"))
	a.Equal(cfg.Ledger.Commitment, v.GetString("Ledger.Commitment"))
	a.Equal(int(cfg.Ledger.PollIntervalMs), v.GetInt("Ledger.PollIntervalMs"))
	a.Equal(DefaultHTTPEndPoint, v.GetString("HTTP.Listen"))
}

func TestDefaultDataDir(t *testing.T) {
	assert.Equal(t, ".paygate", filepath.Base(DefaultDataDir()))
}
