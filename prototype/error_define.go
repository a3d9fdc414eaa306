package prototype

import "github.com/pkg/errors"

var (
	ErrConfiguration       = errors.New("configuration error")
	ErrEmptyWallet         = errors.New("user has no token account for the payment mint")
	ErrOwnerMismatch       = errors.New("token account owner mismatch")
	ErrPricing             = errors.New("mint decimals unavailable")
	ErrLedgerExecution     = errors.New("transaction failed on ledger")
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")

	ErrUnknownInteraction   = errors.New("unknown interaction type")
	ErrMissingAuthor        = errors.New("interaction requires an author")
	ErrInvalidAddress       = errors.New("invalid address")
	ErrInvalidSplit         = errors.New("invalid revenue split")
	ErrIncompleteSignature  = errors.New("transaction is not fully signed")
	ErrBroadcastRejected    = errors.New("transaction rejected by rpc node")
	ErrDuplicateSubmission  = errors.New("transaction already submitted")
	ErrUnknownSignature     = errors.New("signature unknown to ledger")
	ErrEmptyTransaction     = errors.New("transaction has no instructions")
	ErrMalformedTransaction = errors.New("malformed transaction")
)
