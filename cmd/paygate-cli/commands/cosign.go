package commands

import (
	"fmt"

	"github.com/coschain/cobra"
	"github.com/slackernews/paygate/prototype"
	"github.com/slackernews/paygate/wallet"
)

var CosignCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:     "cosign",
		Short:   "add the token owner's signature to a built transaction",
		Example: "cosign <base64 transaction>",
		Args:    cobra.ExactArgs(1),
		Run:     cosign,
	}
}

func cosign(cmd *cobra.Command, args []string) {
	tx, err := prototype.DecodeTransaction(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	key, err := readKey(cmd, "Enter secret key or mnemonic > ")
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := wallet.Cosign(tx, key); err != nil {
		fmt.Println(err)
		return
	}
	encoded, err := prototype.EncodeTransaction(tx)
	if err != nil {
		fmt.Println(err)
		return
	}
	if missing := prototype.MissingSigners(tx); len(missing) > 0 {
		fmt.Println("still missing:", missing)
	}
	fmt.Println(encoded)
}
