package commands

import (
	"fmt"

	"github.com/coschain/cobra"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/slackernews/paygate/prototype"
)

var InspectCmd = func() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect",
		Short:   "decode a transaction and list what it does",
		Example: "inspect <base64 transaction>",
		Args:    cobra.ExactArgs(1),
		Run:     inspect,
	}
}

func inspect(cmd *cobra.Command, args []string) {
	tx, err := prototype.DecodeTransaction(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	lines, err := describe(tx)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range lines {
		fmt.Println(l)
	}
}

// describe renders tx one line per fact: fee payer, blockhash, each
// instruction and each missing signer.
func describe(tx *solana.Transaction) ([]string, error) {
	signers := prototype.RequiredSigners(tx)
	if len(signers) == 0 {
		return nil, prototype.ErrMalformedTransaction
	}
	lines := []string{
		"fee payer: " + signers[0].String(),
		"blockhash: " + tx.Message.RecentBlockhash.String(),
	}
	for i, ix := range tx.Message.Instructions {
		program, err := tx.Message.ResolveProgramIDIndex(ix.ProgramIDIndex)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("#%d %s", i, describeInstruction(tx, program, ix)))
	}
	for _, k := range prototype.MissingSigners(tx) {
		lines = append(lines, "missing signature: "+k.String())
	}
	return lines, nil
}

func describeInstruction(tx *solana.Transaction, program solana.PublicKey, ix solana.CompiledInstruction) string {
	switch {
	case program.Equals(solana.SPLAssociatedTokenAccountProgramID):
		if len(ix.Accounts) > 2 {
			return "create token account " + tx.Message.AccountKeys[ix.Accounts[1]].String() +
				" for " + tx.Message.AccountKeys[ix.Accounts[2]].String()
		}
		return "create token account"
	case program.Equals(solana.TokenProgramID):
		accounts, err := ix.ResolveInstructionAccounts(&tx.Message)
		if err != nil {
			return "token: " + err.Error()
		}
		decoded, err := token.DecodeInstruction(accounts, ix.Data)
		if err != nil {
			return "token: " + err.Error()
		}
		if t, ok := decoded.Impl.(*token.TransferChecked); ok && t.Amount != nil && t.Decimals != nil {
			return fmt.Sprintf("transfer %s from %s to %s",
				prototype.FormatAmount(*t.Amount, *t.Decimals),
				t.GetSourceAccount().PublicKey, t.GetDestinationAccount().PublicKey)
		}
		return fmt.Sprintf("token instruction %d", decoded.TypeID.Uint8())
	default:
		return "program " + program.String()
	}
}
