package app

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/iservices/mock_iservices"
	"github.com/slackernews/paygate/prototype"
	"github.com/stretchr/testify/assert"
)

func TestResolverAddressIsMemoised(t *testing.T) {
	a := assert.New(t)
	r := NewResolver(newFakeLedger(gomock.NewController(t)), quietLogger())
	owner, mint := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()

	first, err := r.Address(owner, mint)
	a.NoError(err)
	second, err := r.Address(owner, mint)
	a.NoError(err)
	a.Equal(first, second)
	a.Equal(testATA(owner, mint), first)
	a.Equal(0.5, r.HitRate())
}

func TestResolveAllDeduplicates(t *testing.T) {
	a := assert.New(t)
	ledger := newFakeLedger(gomock.NewController(t))
	r := NewResolver(ledger, quietLogger())
	mint := solana.NewWallet().PublicKey()
	alice, bob := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	ledger.put(&prototype.LedgerAccount{
		Address: testATA(alice, mint),
		Owner:   solana.TokenProgramID,
		Data:    tokenAccountData(mint, alice, 10),
	})

	refs, err := r.ResolveAll(context.Background(), []solana.PublicKey{alice, bob, alice, bob}, mint)
	a.NoError(err)
	a.Len(refs, 2)
	a.True(refs[alice].Exists)
	a.False(refs[bob].Exists)
	a.Equal(testATA(bob, mint), refs[bob].Address)
	a.Equal(1, ledger.readCount(testATA(alice, mint)))
	a.Equal(1, ledger.readCount(testATA(bob, mint)))
}

func TestResolveWrongMint(t *testing.T) {
	a := assert.New(t)
	ledger := newFakeLedger(gomock.NewController(t))
	r := NewResolver(ledger, quietLogger())
	mint, owner := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	ledger.put(&prototype.LedgerAccount{
		Address: testATA(owner, mint),
		Owner:   solana.TokenProgramID,
		Data:    tokenAccountData(solana.NewWallet().PublicKey(), owner, 10),
	})

	_, err := r.Resolve(context.Background(), owner, mint)
	a.True(errors.Is(err, prototype.ErrOwnerMismatch))
}

func TestResolveLedgerErrorAborts(t *testing.T) {
	a := assert.New(t)
	ledger := mock_iservices.NewMockILedger(gomock.NewController(t))
	ledger.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc unavailable"))
	r := NewResolver(ledger, quietLogger())

	ref, err := r.Resolve(context.Background(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey())
	a.Nil(ref)
	a.Error(err)
	a.False(errors.Is(err, prototype.ErrOwnerMismatch))
}

func TestMintDecimals(t *testing.T) {
	a := assert.New(t)
	ledger := newFakeLedger(gomock.NewController(t))
	r := NewResolver(ledger, quietLogger())
	mint := solana.NewWallet().PublicKey()

	_, err := r.MintDecimals(context.Background(), mint)
	a.True(errors.Is(err, prototype.ErrPricing))

	ledger.put(&prototype.LedgerAccount{Address: mint, Owner: solana.TokenProgramID, Data: mintData(9)})
	d, err := r.MintDecimals(context.Background(), mint)
	a.NoError(err)
	a.Equal(uint8(9), d)

	// decimals are never cached
	ledger.put(&prototype.LedgerAccount{Address: mint, Owner: solana.TokenProgramID, Data: mintData(2)})
	d, err = r.MintDecimals(context.Background(), mint)
	a.NoError(err)
	a.Equal(uint8(2), d)
}
