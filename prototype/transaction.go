package prototype

import (
	"encoding/base64"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// PartialTransaction is an assembled payment transaction carrying the fee
// payer's signature only. The token owner signs it outside this process
// before it is submitted.
type PartialTransaction struct {
	Type         InteractionType
	Quote        Quote
	Instructions []Instruction
	FeePayer     solana.PublicKey
	Checkpoint   Checkpoint
	Tx           *solana.Transaction
}

// RequiredSigners lists every key whose signature the ledger demands, fee
// payer first.
func (p *PartialTransaction) RequiredSigners() []solana.PublicKey {
	return RequiredSigners(p.Tx)
}

// MissingSigners lists the required signers whose slot is still empty.
func (p *PartialTransaction) MissingSigners() []solana.PublicKey {
	return MissingSigners(p.Tx)
}

func (p *PartialTransaction) CreateCount() int {
	return p.count(KindCreateAccount)
}

func (p *PartialTransaction) TransferCount() int {
	return p.count(KindTransferChecked)
}

func (p *PartialTransaction) count(kind InstructionKind) int {
	n := 0
	for _, ix := range p.Instructions {
		if ix.Kind() == kind {
			n++
		}
	}
	return n
}

func (p *PartialTransaction) Base64() (string, error) {
	return EncodeTransaction(p.Tx)
}

func RequiredSigners(tx *solana.Transaction) []solana.PublicKey {
	if tx == nil {
		return nil
	}
	n := int(tx.Message.Header.NumRequiredSignatures)
	if n > len(tx.Message.AccountKeys) {
		n = len(tx.Message.AccountKeys)
	}
	signers := make([]solana.PublicKey, n)
	copy(signers, tx.Message.AccountKeys[:n])
	return signers
}

func MissingSigners(tx *solana.Transaction) []solana.PublicKey {
	var missing []solana.PublicKey
	for i, key := range RequiredSigners(tx) {
		if i >= len(tx.Signatures) || tx.Signatures[i] == (solana.Signature{}) {
			missing = append(missing, key)
		}
	}
	return missing
}

func EncodeTransaction(tx *solana.Transaction) (string, error) {
	if tx == nil {
		return "", ErrEmptyTransaction
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", errors.Wrap(err, "encode transaction")
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func DecodeTransaction(encoded string) (*solana.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedTransaction, "not base64: %v", err)
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedTransaction, "decode: %v", err)
	}
	return tx, nil
}
