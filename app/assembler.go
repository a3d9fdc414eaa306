package app

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/prototype"
)

// Assemble orders instructions into a transaction bound to checkpoint with
// feePayer as the paying signer. Account creations come before transfers,
// each group keeps its input order, and zero-amount transfers are dropped.
// The same input always yields the same message bytes.
func Assemble(instructions []prototype.Instruction, feePayer solana.PublicKey, checkpoint *prototype.Checkpoint) (*prototype.PartialTransaction, error) {
	if checkpoint == nil {
		return nil, errors.New("assemble without checkpoint")
	}

	var creates, transfers []prototype.Instruction
	for _, ix := range instructions {
		switch v := ix.(type) {
		case nil:
		case *prototype.CreateAccount:
			creates = append(creates, v)
		case *prototype.TransferChecked:
			if v.Amount > 0 {
				transfers = append(transfers, v)
			}
		default:
			return nil, errors.Errorf("unexpected instruction %T", ix)
		}
	}

	ordered := append(creates, transfers...)
	if len(ordered) == 0 {
		return nil, prototype.ErrEmptyTransaction
	}

	built := make([]solana.Instruction, 0, len(ordered))
	for _, ix := range ordered {
		b, err := ix.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "build %s", ix)
		}
		built = append(built, b)
	}

	tx, err := solana.NewTransaction(built, checkpoint.Blockhash, solana.TransactionPayer(feePayer))
	if err != nil {
		return nil, errors.Wrap(err, "new transaction")
	}
	return &prototype.PartialTransaction{
		Instructions: ordered,
		FeePayer:     feePayer,
		Checkpoint:   *checkpoint,
		Tx:           tx,
	}, nil
}
