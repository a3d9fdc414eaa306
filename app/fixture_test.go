package app

import (
	"context"
	"encoding/binary"
	"io/ioutil"
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/slackernews/paygate/iservices/mock_iservices"
	"github.com/slackernews/paygate/prototype"
	"github.com/slackernews/paygate/wallet"
	"github.com/stretchr/testify/require"
)

const testDecimals = 6

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

func tokenAccountData(mint, owner solana.PublicKey, amount uint64) []byte {
	data := make([]byte, 165)
	copy(data[0:32], mint[:])
	copy(data[32:64], owner[:])
	binary.LittleEndian.PutUint64(data[64:72], amount)
	data[108] = 1 // initialized
	return data
}

func mintData(decimals uint8) []byte {
	data := make([]byte, 82)
	binary.LittleEndian.PutUint64(data[36:44], 1000000000)
	data[44] = decimals
	data[45] = 1
	return data
}

func testATA(owner, mint solana.PublicKey) solana.PublicKey {
	addr, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		panic(err)
	}
	return addr
}

// fakeLedger serves account reads from a map through a gomock ledger and
// records which addresses were read.
type fakeLedger struct {
	*mock_iservices.MockILedger

	lock     sync.Mutex
	accounts map[solana.PublicKey]*prototype.LedgerAccount
	reads    map[solana.PublicKey]int
}

func newFakeLedger(ctrl *gomock.Controller) *fakeLedger {
	f := &fakeLedger{
		MockILedger: mock_iservices.NewMockILedger(ctrl),
		accounts:    map[solana.PublicKey]*prototype.LedgerAccount{},
		reads:       map[solana.PublicKey]int{},
	}
	f.EXPECT().GetAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, addr solana.PublicKey) (*prototype.LedgerAccount, error) {
			f.lock.Lock()
			defer f.lock.Unlock()
			f.reads[addr]++
			return f.accounts[addr], nil
		}).AnyTimes()
	return f
}

func (f *fakeLedger) put(acc *prototype.LedgerAccount) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.accounts[acc.Address] = acc
}

func (f *fakeLedger) readCount(addr solana.PublicKey) int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.reads[addr]
}

type fixture struct {
	ctrl     *gomock.Controller
	ledger   *fakeLedger
	platform *solana.Wallet
	mint     solana.PublicKey
	bus      EventBus.Bus
	pg       *PayGate
	cp       prototype.Checkpoint
}

func newFixture(t *testing.T, split prototype.RevenueSplit) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		ledger:   newFakeLedger(ctrl),
		platform: solana.NewWallet(),
		mint:     solana.NewWallet().PublicKey(),
		bus:      EventBus.New(),
		cp: prototype.Checkpoint{
			Blockhash:            solana.Hash(solana.NewWallet().PublicKey()),
			LastValidBlockHeight: 1000,
		},
	}
	f.ledger.put(&prototype.LedgerAccount{Address: f.mint, Owner: solana.TokenProgramID, Lamports: 1, Data: mintData(testDecimals)})

	signer, err := wallet.NewPlatformSigner(f.platform.PrivateKey)
	require.NoError(t, err)
	cfg := Config{
		Mint:  f.mint,
		Split: split,
		Submit: SubmitterConfig{
			Commitment:     prototype.CommitmentConfirmed,
			PollInterval:   5 * time.Millisecond,
			ConfirmTimeout: 50 * time.Millisecond,
		},
	}
	f.pg, err = NewPayGate(f.ledger, signer, f.bus, cfg, quietLogger())
	require.NoError(t, err)
	return f
}

// fund gives owner an initialized token account of the fixture mint.
func (f *fixture) fund(owner solana.PublicKey, amount uint64) solana.PublicKey {
	addr := testATA(owner, f.mint)
	f.ledger.put(&prototype.LedgerAccount{
		Address:  addr,
		Owner:    solana.TokenProgramID,
		Lamports: 2039280,
		Data:     tokenAccountData(f.mint, owner, amount),
	})
	return addr
}

func (f *fixture) expectCheckpoint() *gomock.Call {
	return f.ledger.EXPECT().GetLatestCheckpoint(gomock.Any()).Return(&f.cp, nil)
}
