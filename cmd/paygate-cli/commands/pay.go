package commands

import (
	"context"
	"fmt"

	"github.com/coschain/cobra"
	"github.com/slackernews/paygate/prototype"
	"github.com/slackernews/paygate/wallet"
)

var PayCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:     "pay",
		Short:   "build, sign and submit an interaction payment",
		Long:    "pay builds the payment, signs it with the user's key and submits it, the key never leaves this process",
		Example: "pay upvote <user> <author>",
		Args:    cobra.RangeArgs(2, 3),
		Run:     pay,
	}
}

func pay(cmd *cobra.Command, args []string) {
	t, err := prototype.ParseInteractionType(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	author := ""
	if len(args) > 2 {
		author = args[2]
	}
	key, err := readKey(cmd, "Enter secret key or mnemonic > ")
	if err != nil {
		fmt.Println(err)
		return
	}
	if key.PublicKey().String() != args[1] {
		fmt.Printf("key belongs to %s, not %s\n", key.PublicKey(), args[1])
		return
	}

	ctx := context.Background()
	gw := gateway(cmd)
	built, err := gw.Build(ctx, t, args[1], author)
	if err != nil {
		fmt.Println(err)
		return
	}
	tx, err := prototype.DecodeTransaction(built.Transaction)
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
	fmt.Printf("paying %s for %s\n", prototype.FormatAmount(built.Quote.Total, built.Decimals), t)
	res, err := gw.Submit(ctx, encoded)
	if err != nil {
		fmt.Println(err)
		return
	}
	printJSON(res)
}
