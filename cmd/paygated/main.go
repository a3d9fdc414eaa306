package main

import (
	"fmt"
	"os"

	"github.com/coschain/cobra"
	"github.com/slackernews/paygate/cmd/paygated/commands"
)

// paygated runs the payment gateway with its http api when no subcommand is
// given.
var rootCmd = &cobra.Command{
	Use:   "paygated",
	Short: "paygated builds and settles paid interactions",
	Run:   commands.StartCmd().Run,
}

func addCommands() {
	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.StartCmd())
}

func main() {
	addCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
