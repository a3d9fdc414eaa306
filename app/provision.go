package app

import (
	"github.com/gagliardetto/solana-go"
	"github.com/slackernews/paygate/prototype"
)

// Provision returns the instruction creating ref's account, paid by payer,
// or nil when the account already exists.
func Provision(ref *prototype.TokenAccountRef, payer solana.PublicKey) prototype.Instruction {
	if ref == nil || ref.Exists {
		return nil
	}
	return &prototype.CreateAccount{
		Payer:   payer,
		Owner:   ref.Owner,
		Mint:    ref.Mint,
		Address: ref.Address,
	}
}

// ProvisionAll provisions refs in order, creating each address at most once.
func ProvisionAll(refs []*prototype.TokenAccountRef, payer solana.PublicKey) []prototype.Instruction {
	var out []prototype.Instruction
	seen := make(map[solana.PublicKey]bool)
	for _, ref := range refs {
		ix := Provision(ref, payer)
		if ix == nil || seen[ref.Address] {
			continue
		}
		seen[ref.Address] = true
		out = append(out, ix)
	}
	return out
}
