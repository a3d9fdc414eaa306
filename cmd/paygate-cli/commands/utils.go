package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"syscall"

	"github.com/coschain/cobra"
	"github.com/gagliardetto/solana-go"
	"github.com/slackernews/paygate/myhttp"
	"github.com/slackernews/paygate/prototype"
	"github.com/slackernews/paygate/wallet"
	"golang.org/x/crypto/ssh/terminal"
)

const (
	ClientKey  = "client"
	PReaderKey = "preader"
)

// Gateway is the remote api the commands talk to.
type Gateway interface {
	Build(ctx context.Context, t prototype.InteractionType, user, author string) (*myhttp.TransactionResponse, error)
	Submit(ctx context.Context, encoded string) (*myhttp.ResultResponse, error)
	Status(ctx context.Context, sig string) (*myhttp.ResultResponse, error)
	Balance(ctx context.Context, owner string) (*myhttp.BalanceResponse, error)
}

var _ Gateway = (*myhttp.Client)(nil)

type PasswordReader interface {
	ReadPassword(fd int) ([]byte, error)
}

type TerminalReader struct{}

func (TerminalReader) ReadPassword(fd int) ([]byte, error) {
	return terminal.ReadPassword(fd)
}

func gateway(cmd *cobra.Command) Gateway {
	return cmd.Context[ClientKey].(Gateway)
}

// readKey asks for a base58 secret or, when it has spaces, a mnemonic.
func readKey(cmd *cobra.Command, prompt string) (solana.PrivateKey, error) {
	preader := cmd.Context[PReaderKey].(PasswordReader)
	fmt.Print(prompt)
	raw, err := preader.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, err
	}
	secret := strings.TrimSpace(string(raw))
	if strings.Contains(secret, " ") {
		return wallet.KeyFromMnemonic(secret, "")
	}
	return wallet.ParseSecret(secret)
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(out))
}
