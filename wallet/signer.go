package wallet

import (
	"crypto/ed25519"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/prototype"
)

// PlatformSigner holds the platform key that pays network fees and rent.
// It signs only the fee payer slot and never a user's.
type PlatformSigner struct {
	key solana.PrivateKey
}

func NewPlatformSigner(key solana.PrivateKey) (*PlatformSigner, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.WithMessagef(prototype.ErrConfiguration, "platform key has %d bytes", len(key))
	}
	return &PlatformSigner{key: key}, nil
}

// LoadPlatformSigner parses a base58 secret holding either a 64 byte keypair
// or a 32 byte seed.
func LoadPlatformSigner(secret string) (*PlatformSigner, error) {
	key, err := ParseSecret(secret)
	if err != nil {
		return nil, err
	}
	return NewPlatformSigner(key)
}

func ParseSecret(secret string) (solana.PrivateKey, error) {
	raw, err := decodeBase58(secret)
	if err != nil {
		return nil, errors.WithMessagef(prototype.ErrConfiguration, "platform secret: %v", err)
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return solana.PrivateKey(ed25519.NewKeyFromSeed(raw)), nil
	case ed25519.PrivateKeySize:
		key := solana.PrivateKey(raw)
		derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
		if !key.PublicKey().Equals(solana.PrivateKey(derived).PublicKey()) {
			return nil, errors.WithMessage(prototype.ErrConfiguration, "platform secret public half does not match its seed")
		}
		return key, nil
	default:
		return nil, errors.WithMessagef(prototype.ErrConfiguration, "platform secret decodes to %d bytes", len(raw))
	}
}

// EncodeSecret renders a keypair the way ParseSecret reads it.
func EncodeSecret(key solana.PrivateKey) string {
	return encodeBase58(key)
}

func (s *PlatformSigner) PublicKey() solana.PublicKey {
	return s.key.PublicKey()
}

// SignAsFeePayer fills the fee payer signature of tx, leaving every other
// signature slot untouched.
func (s *PlatformSigner) SignAsFeePayer(tx *solana.Transaction) error {
	if len(tx.Message.AccountKeys) == 0 || !tx.Message.AccountKeys[0].Equals(s.PublicKey()) {
		return errors.New("platform signer is not the fee payer of the transaction")
	}
	return signSlot(tx, 0, s.key)
}

// Cosign fills the signature slot of key, as the paying user does before
// handing the transaction back for submission.
func Cosign(tx *solana.Transaction, key solana.PrivateKey) error {
	pub := key.PublicKey()
	required := int(tx.Message.Header.NumRequiredSignatures)
	for i := 0; i < required && i < len(tx.Message.AccountKeys); i++ {
		if tx.Message.AccountKeys[i].Equals(pub) {
			return signSlot(tx, i, key)
		}
	}
	return errors.Errorf("%s is not a required signer of the transaction", pub)
}

func signSlot(tx *solana.Transaction, index int, key solana.PrivateKey) error {
	msg, err := tx.Message.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "encode message")
	}
	sig, err := key.Sign(msg)
	if err != nil {
		return errors.Wrap(err, "sign message")
	}
	required := int(tx.Message.Header.NumRequiredSignatures)
	if len(tx.Signatures) < required {
		sigs := make([]solana.Signature, required)
		copy(sigs, tx.Signatures)
		tx.Signatures = sigs
	}
	tx.Signatures[index] = sig
	return nil
}
