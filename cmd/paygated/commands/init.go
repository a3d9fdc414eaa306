package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coschain/cobra"
	"github.com/slackernews/paygate/common"
	"github.com/slackernews/paygate/config"
)

var InitCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration files",
		Run:   initConf,
	}
	cmd.Flags().StringVarP(&cfgName, "name", "n", "", "node name (default is paygate)")
	cmd.Flags().StringVarP(&clusterName, "cluster", "c", "", "cluster name [mainnet/devnet]")
	return cmd
}

func initConf(cmd *cobra.Command, args []string) {
	_, _ = cmd, args
	cfg := config.DefaultNodeConfig
	if cfgName == "" {
		cfg.Name = ClientIdentifier
	} else {
		cfg.Name = cfgName
	}
	if clusterName != "" {
		if _, err := common.GetClusterByName(clusterName); err != nil {
			common.Fatalf("%v", err)
		}
		cfg.Ledger.Cluster = clusterName
	}
	confdir := filepath.Join(cfg.DataDir, cfg.Name)
	if _, err := os.Stat(confdir); os.IsNotExist(err) {
		if err = os.MkdirAll(confdir, 0700); err != nil {
			common.Fatalf("%v", err)
		}
	}
	if err := config.WriteNodeConfigFile(confdir, "config.toml", cfg, 0600); err != nil {
		common.Fatalf("%v", err)
	}
	fmt.Printf("config written to %s\n", filepath.Join(confdir, "config.toml"))
}
