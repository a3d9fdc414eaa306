package app

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/prototype"
	"github.com/stretchr/testify/assert"
)

func transfer(amount uint64) *prototype.TransferChecked {
	return &prototype.TransferChecked{
		Source:      solana.NewWallet().PublicKey(),
		Destination: solana.NewWallet().PublicKey(),
		Owner:       solana.NewWallet().PublicKey(),
		Mint:        solana.NewWallet().PublicKey(),
		Amount:      amount,
		Decimals:    6,
	}
}

func create(payer solana.PublicKey) *prototype.CreateAccount {
	owner, mint := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	return &prototype.CreateAccount{Payer: payer, Owner: owner, Mint: mint, Address: testATA(owner, mint)}
}

func TestAssembleOrdersCreatesFirst(t *testing.T) {
	a := assert.New(t)
	payer := solana.NewWallet().PublicKey()
	t1, t2 := transfer(800), transfer(200)
	c1, c2 := create(payer), create(payer)

	ptx, err := Assemble([]prototype.Instruction{t1, c1, t2, c2}, payer, &prototype.Checkpoint{})
	a.NoError(err)
	a.Equal([]prototype.Instruction{c1, c2, t1, t2}, ptx.Instructions)
	a.Equal(payer, ptx.Tx.Message.AccountKeys[0])
	a.Len(ptx.Tx.Message.Instructions, 4)

	ata := solana.SPLAssociatedTokenAccountProgramID
	for i, ix := range ptx.Tx.Message.Instructions {
		program := ptx.Tx.Message.AccountKeys[ix.ProgramIDIndex]
		if i < 2 {
			a.Equal(ata, program)
		} else {
			a.Equal(solana.TokenProgramID, program)
		}
	}
}

func TestAssembleDropsZeroTransfers(t *testing.T) {
	a := assert.New(t)
	payer := solana.NewWallet().PublicKey()
	kept := transfer(1)

	ptx, err := Assemble([]prototype.Instruction{transfer(0), kept, nil, transfer(0)}, payer, &prototype.Checkpoint{})
	a.NoError(err)
	a.Equal([]prototype.Instruction{kept}, ptx.Instructions)

	_, err = Assemble([]prototype.Instruction{transfer(0)}, payer, &prototype.Checkpoint{})
	a.True(errors.Is(err, prototype.ErrEmptyTransaction))
}

func TestAssembleBindsCheckpoint(t *testing.T) {
	a := assert.New(t)
	payer := solana.NewWallet().PublicKey()
	cp := &prototype.Checkpoint{Blockhash: solana.Hash(solana.NewWallet().PublicKey()), LastValidBlockHeight: 9}

	ptx, err := Assemble([]prototype.Instruction{transfer(5)}, payer, cp)
	a.NoError(err)
	a.Equal(*cp, ptx.Checkpoint)
	a.Equal(cp.Blockhash, ptx.Tx.Message.RecentBlockhash)

	_, err = Assemble([]prototype.Instruction{transfer(5)}, payer, nil)
	a.Error(err)
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := assert.New(t)
	payer := solana.NewWallet().PublicKey()
	ixs := []prototype.Instruction{transfer(3), create(payer), transfer(4)}
	cp := &prototype.Checkpoint{Blockhash: solana.Hash(payer)}

	first, err := Assemble(ixs, payer, cp)
	a.NoError(err)
	for i := 0; i < 10; i++ {
		again, err := Assemble(ixs, payer, cp)
		a.NoError(err)
		m1, _ := first.Tx.Message.MarshalBinary()
		m2, _ := again.Tx.Message.MarshalBinary()
		a.Equal(m1, m2)
	}
}

func TestProvision(t *testing.T) {
	a := assert.New(t)
	payer := solana.NewWallet().PublicKey()
	owner, mint := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	missing := &prototype.TokenAccountRef{Owner: owner, Mint: mint, Address: testATA(owner, mint)}
	existing := &prototype.TokenAccountRef{Owner: owner, Mint: mint, Address: testATA(owner, mint), Exists: true}

	a.Nil(Provision(existing, payer))
	a.Nil(Provision(nil, payer))

	ix := Provision(missing, payer).(*prototype.CreateAccount)
	a.Equal(payer, ix.Payer)
	a.Equal(owner, ix.Owner)
	a.Equal(missing.Address, ix.Address)

	// the same account referenced twice is created once
	a.Len(ProvisionAll([]*prototype.TokenAccountRef{missing, missing, existing}, payer), 1)
	a.Empty(ProvisionAll([]*prototype.TokenAccountRef{existing}, payer))
}
