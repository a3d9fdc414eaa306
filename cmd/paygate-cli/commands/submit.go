package commands

import (
	"context"
	"fmt"

	"github.com/coschain/cobra"
)

var SubmitCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:     "submit",
		Short:   "broadcast a fully signed transaction and wait for it",
		Example: "submit <base64 transaction>",
		Args:    cobra.ExactArgs(1),
		Run:     submit,
	}
}

func submit(cmd *cobra.Command, args []string) {
	res, err := gateway(cmd).Submit(context.Background(), args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	printJSON(res)
}

var StatusCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "query the state of a submitted transaction",
		Example: "status <signature>",
		Args:    cobra.ExactArgs(1),
		Run:     status,
	}
}

func status(cmd *cobra.Command, args []string) {
	res, err := gateway(cmd).Status(context.Background(), args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	printJSON(res)
}

var BalanceCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:     "balance",
		Short:   "show an owner's balance of the payment token",
		Example: "balance <owner>",
		Args:    cobra.ExactArgs(1),
		Run:     balance,
	}
}

func balance(cmd *cobra.Command, args []string) {
	b, err := gateway(cmd).Balance(context.Background(), args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s (%d accounts)\n", b.Display, b.Accounts)
}
