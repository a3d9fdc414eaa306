package node

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/slackernews/paygate/common"
	"github.com/slackernews/paygate/iservices/service-configs"
	"github.com/slackernews/paygate/prototype"
	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Name: "paygate",
		Ledger: service_configs.LedgerConfig{
			Cluster:          "devnet",
			Commitment:       "confirmed",
			ConfirmTimeoutMs: 1000,
			PollIntervalMs:   100,
		},
		Signer: service_configs.SignerConfig{SecretKey: "secret", SecretEnv: "PAYGATE_PLATFORM_SIGNER"},
	}
}

func TestConfigValidate(t *testing.T) {
	a := assert.New(t)
	cfg := validConfig()
	a.NoError(cfg.Validate())

	cfg.Ledger.Cluster = ""
	a.True(errors.Is(cfg.Validate(), prototype.ErrConfiguration))
	cfg.Ledger.RPCEndpoint = "http://127.0.0.1:8899"
	cfg.Ledger.Mint = ""
	a.True(errors.Is(cfg.Validate(), prototype.ErrConfiguration))
	cfg.Ledger.Mint = "So11111111111111111111111111111111111111112"
	a.NoError(cfg.Validate())
	c, err := common.ResolveCluster(cfg.Ledger.Cluster, cfg.Ledger.RPCEndpoint, cfg.Ledger.Mint)
	a.NoError(err)
	a.Equal(cfg.Ledger.Mint, c.Mint)

	cfg = validConfig()
	cfg.Signer.SecretKey = ""
	err = cfg.Validate()
	a.True(errors.Is(err, prototype.ErrConfiguration))
	a.Contains(err.Error(), "PAYGATE_PLATFORM_SIGNER")

	cfg = validConfig()
	cfg.Ledger.Commitment = "recent"
	a.Error(cfg.Validate())

	cfg = validConfig()
	cfg.Ledger.ConfirmTimeoutMs = 50
	a.True(errors.Is(cfg.Validate(), prototype.ErrConfiguration))
}

func TestResolvePath(t *testing.T) {
	a := assert.New(t)
	cfg := Config{Name: "paygate", DataDir: "/data"}
	a.Equal("/data/paygate/logs", cfg.ResolvePath("logs"))
	a.Equal("/var/log", cfg.ResolvePath("/var/log"))
	a.Equal("", (&Config{Name: "x"}).ResolvePath("logs"))
}
