package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/coocood/freecache"
	mapset "github.com/deckarep/golang-set"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slackernews/paygate/common/constants"
	"github.com/slackernews/paygate/iservices"
	"github.com/slackernews/paygate/prototype"
	"golang.org/x/sync/errgroup"
)

// Resolver finds the associated token accounts of wallets and reads their
// state from the ledger. Derived addresses are memoised, ledger state never is.
type Resolver struct {
	ledger iservices.ILedger
	log    *logrus.Logger
	cache  *freecache.Cache // owner|mint -> associated token address

	totalQueries, totalHit int64
}

func NewResolver(ledger iservices.ILedger, logger *logrus.Logger) *Resolver {
	return &Resolver{
		ledger: ledger,
		log:    logger,
		cache:  freecache.NewCache(constants.AddressCacheSize),
	}
}

// Address returns the associated token account of (owner, mint) under the SPL
// token program. It never touches the ledger.
func (r *Resolver) Address(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	atomic.AddInt64(&r.totalQueries, 1)
	key := append(owner.Bytes(), mint.Bytes()...)
	if data, err := r.cache.Get(key); err == nil {
		atomic.AddInt64(&r.totalHit, 1)
		return solana.PublicKeyFromBytes(data), nil
	}
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(err, "derive token account of %s", owner)
	}
	_ = r.cache.Set(key, addr.Bytes(), 0)
	return addr, nil
}

// HitRate returns the address cache hit rate, in range [0, 1].
func (r *Resolver) HitRate() float64 {
	a, b := atomic.LoadInt64(&r.totalHit), atomic.LoadInt64(&r.totalQueries)
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// Resolve reads the associated token account of (owner, mint). A missing
// account resolves with Exists false. An account at that address which is not
// an SPL token account of owner for mint fails with ErrOwnerMismatch.
func (r *Resolver) Resolve(ctx context.Context, owner, mint solana.PublicKey) (*prototype.TokenAccountRef, error) {
	addr, err := r.Address(owner, mint)
	if err != nil {
		return nil, err
	}
	ref := &prototype.TokenAccountRef{Owner: owner, Mint: mint, Address: addr}

	acc, err := r.ledger.GetAccount(ctx, addr)
	if err != nil {
		return nil, errors.WithMessagef(err, "resolve token account of %s", owner)
	}
	if acc == nil {
		return ref, nil
	}
	if err := checkTokenAccount(acc, owner, mint); err != nil {
		r.log.WithFields(logrus.Fields{"address": addr, "owner": owner, "err": err}).Warn("token account does not match")
		return nil, err
	}
	ref.Exists = true
	return ref, nil
}

func checkTokenAccount(acc *prototype.LedgerAccount, owner, mint solana.PublicKey) error {
	if !acc.Owner.Equals(solana.TokenProgramID) {
		return errors.Wrapf(prototype.ErrOwnerMismatch, "%s is owned by program %s", acc.Address, acc.Owner)
	}
	var state token.Account
	if err := state.UnmarshalWithDecoder(bin.NewBinDecoder(acc.Data)); err != nil {
		return errors.Wrapf(prototype.ErrOwnerMismatch, "%s is not a token account: %v", acc.Address, err)
	}
	if !state.Owner.Equals(owner) {
		return errors.Wrapf(prototype.ErrOwnerMismatch, "%s belongs to %s, not %s", acc.Address, state.Owner, owner)
	}
	if !state.Mint.Equals(mint) {
		return errors.Wrapf(prototype.ErrOwnerMismatch, "%s holds mint %s, not %s", acc.Address, state.Mint, mint)
	}
	return nil
}

// ResolveAll resolves each distinct owner once, concurrently.
func (r *Resolver) ResolveAll(ctx context.Context, owners []solana.PublicKey, mint solana.PublicKey) (map[solana.PublicKey]*prototype.TokenAccountRef, error) {
	distinct := mapset.NewSet()
	for _, o := range owners {
		distinct.Add(o)
	}

	var lock sync.Mutex
	refs := make(map[solana.PublicKey]*prototype.TokenAccountRef, distinct.Cardinality())
	g, gctx := errgroup.WithContext(ctx)
	for o := range distinct.Iter() {
		owner := o.(solana.PublicKey)
		g.Go(func() error {
			ref, err := r.Resolve(gctx, owner, mint)
			if err != nil {
				return err
			}
			lock.Lock()
			refs[owner] = ref
			lock.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return refs, nil
}

// MintDecimals reads the mint's decimals from the ledger.
func (r *Resolver) MintDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error) {
	acc, err := r.ledger.GetAccount(ctx, mint)
	if err != nil {
		return 0, errors.Wrapf(prototype.ErrPricing, "read mint %s: %v", mint, err)
	}
	if acc == nil {
		return 0, errors.Wrapf(prototype.ErrPricing, "mint %s not found", mint)
	}
	if !acc.Owner.Equals(solana.TokenProgramID) {
		return 0, errors.Wrapf(prototype.ErrPricing, "mint %s is owned by program %s", mint, acc.Owner)
	}
	var state token.Mint
	if err := state.UnmarshalWithDecoder(bin.NewBinDecoder(acc.Data)); err != nil {
		return 0, errors.Wrapf(prototype.ErrPricing, "decode mint %s: %v", mint, err)
	}
	if !state.IsInitialized {
		return 0, errors.Wrapf(prototype.ErrPricing, "mint %s is not initialized", mint)
	}
	return state.Decimals, nil
}

// Balance sums every token account of owner holding mint.
func (r *Resolver) Balance(ctx context.Context, owner, mint solana.PublicKey) (*prototype.Balance, error) {
	accs, err := r.ledger.GetTokenAccountsByOwner(ctx, owner, mint)
	if err != nil {
		return nil, err
	}
	decimals, err := r.MintDecimals(ctx, mint)
	if err != nil {
		return nil, err
	}
	b := &prototype.Balance{Owner: owner.String(), Mint: mint.String(), Decimals: decimals}
	for _, acc := range accs {
		var state token.Account
		if err := state.UnmarshalWithDecoder(bin.NewBinDecoder(acc.Data)); err != nil {
			return nil, errors.Wrapf(err, "decode token account %s", acc.Address)
		}
		if !state.Mint.Equals(mint) {
			continue
		}
		b.Amount += state.Amount
		b.Accounts++
	}
	return b, nil
}
