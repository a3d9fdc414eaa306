package iservices

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/slackernews/paygate/prototype"
)

var LedgerServerName = "ledger"

// ILedger is the subset of the ledger rpc api used to build and settle
// payments. Only SendTransaction changes ledger state.
type ILedger interface {
	// GetAccount returns nil and no error when the account does not exist.
	GetAccount(ctx context.Context, address solana.PublicKey) (*prototype.LedgerAccount, error)

	GetLatestCheckpoint(ctx context.Context) (*prototype.Checkpoint, error)

	IsCheckpointValid(ctx context.Context, blockhash solana.Hash) (bool, error)

	// SendTransaction broadcasts tx once. A refusal by the rpc node wraps
	// prototype.ErrBroadcastRejected.
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)

	// GetSignatureStatus returns nil and no error while the ledger has no
	// record of sig.
	GetSignatureStatus(ctx context.Context, sig solana.Signature) (*prototype.SignatureStatus, error)

	GetTokenAccountsByOwner(ctx context.Context, owner, mint solana.PublicKey) ([]*prototype.LedgerAccount, error)
}
