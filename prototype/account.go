package prototype

import (
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// TokenAccountRef is the associated token account of (Owner, Mint) as seen on
// the ledger during one build. It must not outlive that build.
type TokenAccountRef struct {
	Owner   solana.PublicKey
	Mint    solana.PublicKey
	Address solana.PublicKey
	Exists  bool
}

// LedgerAccount is the raw state of one ledger account.
type LedgerAccount struct {
	Address  solana.PublicKey
	Owner    solana.PublicKey // owning program
	Lamports uint64
	Data     []byte
}

// Checkpoint bounds the lifetime of a transaction.
type Checkpoint struct {
	Blockhash            solana.Hash
	LastValidBlockHeight uint64
}

type SignatureStatus struct {
	Slot               uint64
	Confirmations      *uint64
	ConfirmationStatus Commitment
	// Err is the ledger's execution error rendered as JSON, empty on success.
	Err string
}

type Balance struct {
	Owner    string `json:"owner"`
	Mint     string `json:"mint"`
	Amount   uint64 `json:"amount"`
	Decimals uint8  `json:"decimals"`
	Accounts int    `json:"accounts"`
}

// UiAmount renders Amount with Decimals fractional digits.
func (b *Balance) UiAmount() string {
	return FormatAmount(b.Amount, b.Decimals)
}

func FormatAmount(amount uint64, decimals uint8) string {
	if decimals == 0 {
		return strconv.FormatUint(amount, 10)
	}
	digits := strconv.FormatUint(amount, 10)
	for len(digits) <= int(decimals) {
		digits = "0" + digits
	}
	split := len(digits) - int(decimals)
	return digits[:split] + "." + digits[split:]
}

// ParseAddress decodes a base58 account address.
func ParseAddress(s string) (solana.PublicKey, error) {
	if s == "" {
		return solana.PublicKey{}, errors.Wrap(ErrInvalidAddress, "empty address")
	}
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(ErrInvalidAddress, "%q: %v", s, err)
	}
	return pk, nil
}
