package commands

import (
	"fmt"

	"github.com/coschain/cobra"
	"github.com/slackernews/paygate/wallet"
)

var GenKeyCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:   "genkey",
		Short: "generate a new keypair and its mnemonic",
		Run:   genKey,
	}
}

func genKey(cmd *cobra.Command, args []string) {
	mnemonic, err := wallet.GenerateMnemonic()
	if err != nil {
		fmt.Println("Generate New Key Error:", err)
		return
	}
	key, err := wallet.KeyFromMnemonic(mnemonic, "")
	if err != nil {
		fmt.Println("Generate New Key Error:", err)
		return
	}
	fmt.Println("Mnemonic:   ", mnemonic)
	fmt.Println("Public  Key:", key.PublicKey())
	fmt.Println("Secret  Key:", wallet.EncodeSecret(key))
}
