package node

import (
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"github.com/slackernews/paygate/iservices/service-configs"
	"github.com/slackernews/paygate/prototype"
)

type Config struct {
	// Name refers the name of node's instance
	Name string `toml:"-"`

	// Version should be set to the version number of the program.
	Version string `toml:"-"`

	// DataDir is the root folder that store data and configs
	DataDir string

	Ledger service_configs.LedgerConfig
	Signer service_configs.SignerConfig
	HTTP   service_configs.HTTPConfig
	Log    service_configs.LogConfig
}

func (c *Config) name() string {
	if c.Name == "" {
		panic("empty node name, set Config.Name")
	}
	return c.Name
}

// NodeName returns the node's complete name
func (c *Config) NodeName() string {
	name := c.name()
	if c.Version != "" {
		name += "/v" + c.Version
	}
	name += "/" + runtime.GOOS + "-" + runtime.GOARCH
	name += "/" + runtime.Version()
	return name
}

// ResolvePath resolves path in the instance directory.
func (c *Config) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.instanceDir(), path)
}

func (c *Config) instanceDir() string {
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.DataDir, c.Name)
}

// Validate checks the settings a running gateway cannot do without.
func (c *Config) Validate() error {
	if c.Ledger.Cluster == "" && (c.Ledger.RPCEndpoint == "" || c.Ledger.Mint == "") {
		return errors.WithMessage(prototype.ErrConfiguration, "without a cluster both rpc endpoint and mint must be set")
	}
	if c.Signer.SecretKey == "" {
		return errors.WithMessagef(prototype.ErrConfiguration, "platform signer secret is empty, set %s", c.Signer.SecretEnv)
	}
	if _, err := prototype.ParseCommitment(c.Ledger.Commitment); err != nil {
		return err
	}
	if c.Ledger.PollIntervalMs == 0 || c.Ledger.ConfirmTimeoutMs < c.Ledger.PollIntervalMs {
		return errors.WithMessage(prototype.ErrConfiguration, "confirm timeout must cover at least one poll interval")
	}
	return nil
}
