package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/coschain/cobra"
	"github.com/slackernews/paygate/app"
	"github.com/slackernews/paygate/common"
	"github.com/slackernews/paygate/common/constants"
	"github.com/slackernews/paygate/config"
	"github.com/slackernews/paygate/iservices"
	"github.com/slackernews/paygate/myhttp"
	"github.com/slackernews/paygate/mylog"
	"github.com/slackernews/paygate/node"
	"github.com/spf13/viper"
)

var StartCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "start the paygate node",
		Run:   startNode,
	}
	cmd.Flags().StringVarP(&cfgName, "name", "n", "", "node name (default is paygate)")
	return cmd
}

// readConfig loads config.toml of the named instance. The signer secret and
// the rpc endpoint may come from the environment.
func readConfig() *node.Config {
	var cfg node.Config
	if cfgName == "" {
		cfg.Name = ClientIdentifier
	} else {
		cfg.Name = cfgName
	}
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Join(config.DefaultDataDir(), cfg.Name))
	v.SetEnvPrefix("PAYGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("Ledger.RPCEndpoint", "PAYGATE_RPC_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("fatal: not be initialized (do `init` first)\n")
		os.Exit(1)
	}
	secretEnv := v.GetString("Signer.SecretEnv")
	if secretEnv == "" {
		secretEnv = constants.SignerSecretEnv
	}
	_ = v.BindEnv("Signer.SecretKey", secretEnv)
	if err := v.Unmarshal(&cfg); err != nil {
		common.Fatalf("decode config: %v", err)
	}
	// the secret is never part of the file
	cfg.Signer.SecretKey = v.GetString("Signer.SecretKey")
	cfg.Signer.SecretEnv = secretEnv
	cfg.Ledger.RPCEndpoint = v.GetString("Ledger.RPCEndpoint")

	if cfg.DataDir != "" {
		dir, err := filepath.Abs(cfg.DataDir)
		if err != nil {
			common.Fatalf("DataDir in cfg cannot be converted to absolute path")
		}
		cfg.DataDir = dir
	}
	return &cfg
}

func makeNode() *node.Node {
	cfg := readConfig()
	if err := cfg.Validate(); err != nil {
		common.Fatalf("%v", err)
	}
	n, err := node.New(cfg)
	if err != nil {
		common.Fatalf("%v", err)
	}
	return n
}

func startNode(cmd *cobra.Command, args []string) {
	_, _ = cmd, args
	n := makeNode()

	_ = n.Register(iservices.LogServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		cfg := ctx.Config().Log
		path := ""
		if cfg.Path != "" {
			path = ctx.ResolvePath(cfg.Path)
		}
		return mylog.NewMyLog(path, cfg.Level, cfg.MaxAgeHours)
	})
	_ = n.Register(iservices.PayGateServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return app.NewPayGateService(ctx)
	})
	_ = n.Register(iservices.HTTPServerName, func(ctx *node.ServiceContext) (node.Service, error) {
		return myhttp.NewMyHttp(ctx)
	})

	if err := n.Start(); err != nil {
		common.Fatalf("start node failed, err: %v\n", err)
	}
	n.Log.WithField("node", n.Config().NodeName()).Info("paygate node running")

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		<-sigc
		n.Log.Info("Got interrupt, shutting down...")
		go n.Stop()
	}()

	n.Wait()
}
