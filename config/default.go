package config

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/slackernews/paygate/common/constants"
	"github.com/slackernews/paygate/iservices/service-configs"
	"github.com/slackernews/paygate/mylog"
	"github.com/slackernews/paygate/node"
)

const (
	DefaultHTTPEndPoint = "localhost:8080"
	DefaultLogMaxAge    = 72
)

// DefaultNodeConfig contains reasonable default settings.
var DefaultNodeConfig = node.Config{
	DataDir: DefaultDataDir(),
	Ledger: service_configs.LedgerConfig{
		Cluster:          constants.DefaultCluster,
		Commitment:       constants.CommitmentConfirmed,
		ConfirmTimeoutMs: constants.DefaultConfirmTimeoutMs,
		PollIntervalMs:   constants.DefaultPollIntervalMs,
		RequestsPerSec:   constants.DefaultRequestsPerSec,
		ReadRetries:      constants.DefaultReadRetries,
	},
	Signer: service_configs.SignerConfig{
		SecretEnv: constants.SignerSecretEnv,
	},
	HTTP: service_configs.HTTPConfig{
		Listen: DefaultHTTPEndPoint,
	},
	Log: service_configs.LogConfig{
		Level:       mylog.InfoLevel,
		MaxAgeHours: DefaultLogMaxAge,
	},
}

func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".paygate")
}
