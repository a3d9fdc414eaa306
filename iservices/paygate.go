package iservices

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/slackernews/paygate/prototype"
)

var PayGateServerName = "paygate"

type IPayGate interface {
	BuildPostTransaction(ctx context.Context, user solana.PublicKey) (*prototype.PartialTransaction, error)
	BuildInteractionTransaction(ctx context.Context, t prototype.InteractionType, user, author solana.PublicKey) (*prototype.PartialTransaction, error)
	Submit(ctx context.Context, tx *solana.Transaction) (*prototype.SubmissionResult, error)
	SubmitEncoded(ctx context.Context, encoded string) (*prototype.SubmissionResult, error)
	Status(ctx context.Context, sig solana.Signature) (*prototype.SubmissionResult, error)
	Balance(ctx context.Context, owner solana.PublicKey) (*prototype.Balance, error)
	OnConfirmed(fn func(*prototype.SubmissionResult)) error
}

// IPayGateService is the node service owning the running gateway.
type IPayGateService interface {
	Gateway() IPayGate
}
