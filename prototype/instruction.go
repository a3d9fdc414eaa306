package prototype

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/token"
)

type InstructionKind uint8

const (
	KindCreateAccount InstructionKind = iota + 1
	KindTransferChecked
)

func (k InstructionKind) String() string {
	switch k {
	case KindCreateAccount:
		return "create_account"
	case KindTransferChecked:
		return "transfer_checked"
	default:
		return "unknown"
	}
}

// Instruction is one ledger instruction of a payment. The set of
// implementations is closed: *CreateAccount and *TransferChecked.
type Instruction interface {
	Kind() InstructionKind
	Build() (solana.Instruction, error)
	String() string

	sealed()
}

// CreateAccount creates the associated token account Address of (Owner, Mint),
// paid for by Payer.
type CreateAccount struct {
	Payer   solana.PublicKey
	Owner   solana.PublicKey
	Mint    solana.PublicKey
	Address solana.PublicKey
}

func (c *CreateAccount) Kind() InstructionKind { return KindCreateAccount }

func (c *CreateAccount) Build() (solana.Instruction, error) {
	return associatedtokenaccount.NewCreateInstruction(c.Payer, c.Owner, c.Mint).ValidateAndBuild()
}

func (c *CreateAccount) String() string {
	return fmt.Sprintf("create %s (owner %s, payer %s)", c.Address, c.Owner, c.Payer)
}

func (c *CreateAccount) sealed() {}

// TransferChecked moves Amount base units of Mint from Source to Destination
// under the authority of Owner.
type TransferChecked struct {
	Source      solana.PublicKey
	Destination solana.PublicKey
	Owner       solana.PublicKey
	Mint        solana.PublicKey
	Amount      uint64
	Decimals    uint8
}

func (t *TransferChecked) Kind() InstructionKind { return KindTransferChecked }

func (t *TransferChecked) Build() (solana.Instruction, error) {
	return token.NewTransferCheckedInstruction(
		t.Amount,
		t.Decimals,
		t.Source,
		t.Mint,
		t.Destination,
		t.Owner,
		[]solana.PublicKey{},
	).ValidateAndBuild()
}

func (t *TransferChecked) String() string {
	return fmt.Sprintf("transfer %d (decimals %d) %s -> %s", t.Amount, t.Decimals, t.Source, t.Destination)
}

func (t *TransferChecked) sealed() {}
