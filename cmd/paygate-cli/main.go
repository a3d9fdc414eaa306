package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/coschain/cobra"
	"github.com/slackernews/paygate/cmd/paygate-cli/commands"
	"github.com/slackernews/paygate/myhttp"
)

var endpoint string

var rootCmd = &cobra.Command{
	Use:   "paygate-cli",
	Short: "paygate-cli builds, signs and submits paid interactions",
}

func pcFromCommands(parent readline.PrefixCompleterInterface, c *cobra.Command) {
	pc := readline.PcItem(c.Use)
	parent.SetChildren(append(parent.GetChildren(), pc))
	for _, child := range c.Commands() {
		pcFromCommands(pc, child)
	}
}

func inheritContext(c *cobra.Command) {
	for _, child := range c.Commands() {
		child.Context = c.Context
		inheritContext(child)
	}
}

func runShell() {
	completer := readline.NewPrefixCompleter()
	for _, child := range rootCmd.Commands() {
		pcFromCommands(completer, child)
	}
	shell, err := readline.NewEx(&readline.Config{
		Prompt:       "> ",
		AutoComplete: completer,
		EOFPrompt:    "exit",
	})
	if err != nil {
		panic(err)
	}
	defer shell.Close()

	for {
		l, err := shell.Readline()
		if err != nil {
			break
		}
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			break
		}
		cmd, flags, err := rootCmd.Find(fields)
		if err != nil || cmd == rootCmd {
			shell.Terminal.Write([]byte("unknown command " + fields[0] + "\n"))
			continue
		}
		if err := cmd.ParseFlags(flags); err != nil {
			shell.Terminal.Write([]byte(err.Error() + "\n"))
			continue
		}
		args := cmd.Flags().Args()
		if cmd.Args != nil {
			if err := cmd.Args(cmd, args); err != nil {
				shell.Terminal.Write([]byte(err.Error() + "\n"))
				continue
			}
		}
		cmd.Run(cmd, args)
	}
}

func addCommands() {
	rootCmd.AddCommand(commands.PostCmd())
	rootCmd.AddCommand(commands.CommentCmd())
	rootCmd.AddCommand(commands.UpvoteCmd())
	rootCmd.AddCommand(commands.CosignCmd())
	rootCmd.AddCommand(commands.SubmitCmd())
	rootCmd.AddCommand(commands.PayCmd())
	rootCmd.AddCommand(commands.StatusCmd())
	rootCmd.AddCommand(commands.BalanceCmd())
	rootCmd.AddCommand(commands.GenKeyCmd())
	rootCmd.AddCommand(commands.InspectCmd())
}

func init() {
	addCommands()
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "localhost:8080", "paygated http address")
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		runShell()
	}
}

func main() {
	// endpoint is known only once Execute has parsed the flags
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		rootCmd.SetContext(commands.ClientKey, myhttp.NewClient(endpoint))
		rootCmd.SetContext(commands.PReaderKey, commands.TerminalReader{})
		inheritContext(rootCmd)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
