package app

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slackernews/paygate/common/constants"
	"github.com/slackernews/paygate/economist"
	"github.com/slackernews/paygate/iservices"
	"github.com/slackernews/paygate/prototype"
	"github.com/slackernews/paygate/wallet"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Mint        solana.PublicKey
	Split       prototype.RevenueSplit
	Submit      SubmitterConfig
	TrackerSize int
}

// PayGate turns interactions into partially signed payment transactions and
// settles the fully signed ones.
type PayGate struct {
	economist *economist.Economist
	resolver  *Resolver
	submitter *Submitter
	signer    *wallet.PlatformSigner
	bus       EventBus.Bus
	mint      solana.PublicKey
	log       *logrus.Logger
}

var _ iservices.IPayGate = (*PayGate)(nil)

func NewPayGate(ledger iservices.ILedger, signer *wallet.PlatformSigner, bus EventBus.Bus, cfg Config, logger *logrus.Logger) (*PayGate, error) {
	if signer == nil {
		return nil, errors.WithMessage(prototype.ErrConfiguration, "no platform signer")
	}
	if cfg.Mint.IsZero() {
		return nil, errors.WithMessage(prototype.ErrConfiguration, "no payment mint")
	}
	eco, err := economist.New(cfg.Split)
	if err != nil {
		return nil, err
	}
	size := cfg.TrackerSize
	if size <= 0 {
		size = constants.TrackerSize
	}
	tracker, err := NewTracker(size)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		bus = EventBus.New()
	}
	return &PayGate{
		economist: eco,
		resolver:  NewResolver(ledger, logger),
		submitter: NewSubmitter(ledger, tracker, bus, cfg.Submit, logger),
		signer:    signer,
		bus:       bus,
		mint:      cfg.Mint,
		log:       logger,
	}, nil
}

func (p *PayGate) Treasury() solana.PublicKey {
	return p.signer.PublicKey()
}

func (p *PayGate) Mint() solana.PublicKey {
	return p.mint
}

// BuildPostTransaction charges user the post cost, paid entirely to the
// platform.
func (p *PayGate) BuildPostTransaction(ctx context.Context, user solana.PublicKey) (*prototype.PartialTransaction, error) {
	return p.build(ctx, prototype.InteractionPost, user, solana.PublicKey{})
}

// BuildInteractionTransaction charges user for interacting with author's
// content, split between author and platform.
func (p *PayGate) BuildInteractionTransaction(ctx context.Context, t prototype.InteractionType, user, author solana.PublicKey) (*prototype.PartialTransaction, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if !t.HasAuthor() {
		return p.build(ctx, t, user, solana.PublicKey{})
	}
	if author.IsZero() {
		return nil, errors.Wrapf(prototype.ErrMissingAuthor, "%s", t)
	}
	return p.build(ctx, t, user, author)
}

type recipient struct {
	owner  solana.PublicKey
	amount uint64
}

func (p *PayGate) build(ctx context.Context, t prototype.InteractionType, user, author solana.PublicKey) (*prototype.PartialTransaction, error) {
	if user.IsZero() {
		return nil, errors.Wrap(prototype.ErrInvalidAddress, "empty user address")
	}
	quote, err := p.economist.Quote(t)
	if err != nil {
		return nil, err
	}
	feePayer := p.signer.PublicKey()
	logger := p.log.WithFields(logrus.Fields{"type": t, "user": user})

	// author first, then platform; zero shares need no account
	var recipients []recipient
	if quote.AuthorShare > 0 {
		recipients = append(recipients, recipient{author, quote.AuthorShare})
	}
	if quote.PlatformShare > 0 {
		recipients = append(recipients, recipient{feePayer, quote.PlatformShare})
	}

	owners := []solana.PublicKey{user}
	for _, r := range recipients {
		owners = append(owners, r.owner)
	}

	var (
		refs     map[solana.PublicKey]*prototype.TokenAccountRef
		decimals uint8
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		refs, err = p.resolver.ResolveAll(gctx, owners, p.mint)
		return err
	})
	g.Go(func() error {
		var err error
		decimals, err = p.resolver.MintDecimals(gctx, p.mint)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("resolution failed")
		return nil, err
	}

	source := refs[user]
	if !source.Exists {
		return nil, errors.Wrapf(prototype.ErrEmptyWallet, "%s has no account for mint %s", user, p.mint)
	}

	recipientRefs := make([]*prototype.TokenAccountRef, 0, len(recipients))
	for _, r := range recipients {
		recipientRefs = append(recipientRefs, refs[r.owner])
	}
	instructions := ProvisionAll(recipientRefs, feePayer)
	for _, r := range recipients {
		instructions = append(instructions, &prototype.TransferChecked{
			Source:      source.Address,
			Destination: refs[r.owner].Address,
			Owner:       user,
			Mint:        p.mint,
			Amount:      r.amount,
			Decimals:    decimals,
		})
	}

	checkpoint, err := p.resolver.ledger.GetLatestCheckpoint(ctx)
	if err != nil {
		return nil, err
	}
	ptx, err := Assemble(instructions, feePayer, checkpoint)
	if err != nil {
		return nil, err
	}
	ptx.Type = t
	ptx.Quote = *quote
	if err := p.signer.SignAsFeePayer(ptx.Tx); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"total":     quote.Total,
		"creates":   ptx.CreateCount(),
		"transfers": ptx.TransferCount(),
	}).Info("payment transaction built")
	return ptx, nil
}

func (p *PayGate) Submit(ctx context.Context, tx *solana.Transaction) (*prototype.SubmissionResult, error) {
	return p.submitter.Submit(ctx, tx)
}

// SubmitEncoded decodes a base64 transaction and submits it.
func (p *PayGate) SubmitEncoded(ctx context.Context, encoded string) (*prototype.SubmissionResult, error) {
	tx, err := prototype.DecodeTransaction(encoded)
	if err != nil {
		return nil, err
	}
	return p.Submit(ctx, tx)
}

func (p *PayGate) Status(ctx context.Context, sig solana.Signature) (*prototype.SubmissionResult, error) {
	return p.submitter.Status(ctx, sig)
}

func (p *PayGate) Balance(ctx context.Context, owner solana.PublicKey) (*prototype.Balance, error) {
	return p.resolver.Balance(ctx, owner, p.mint)
}

// OnConfirmed calls fn for every confirmed payment, including payments that
// settle after their submission timed out. Off-chain effects of an
// interaction belong here.
func (p *PayGate) OnConfirmed(fn func(*prototype.SubmissionResult)) error {
	return p.bus.Subscribe(constants.NoticeTrxConfirmed, fn)
}
