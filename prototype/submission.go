package prototype

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type SubmissionStatus uint8

const (
	StatusBuilt SubmissionStatus = iota
	StatusBroadcast
	StatusConfirmed
	StatusFailed
	StatusTimedOut
	// the rpc node refused the transaction, nothing was broadcast
	StatusRejected
	// never landed and can no longer land
	StatusExpired
)

var statusNames = map[SubmissionStatus]string{
	StatusBuilt:     "built",
	StatusBroadcast: "broadcast",
	StatusConfirmed: "confirmed",
	StatusFailed:    "failed",
	StatusTimedOut:  "timed_out",
	StatusRejected:  "rejected",
	StatusExpired:   "expired",
}

func (s SubmissionStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s SubmissionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether no further change can be observed for this
// submission attempt. TimedOut is terminal for the attempt but not for the
// transaction, which may still land.
func (s SubmissionStatus) Terminal() bool {
	switch s {
	case StatusConfirmed, StatusFailed, StatusTimedOut, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// SubmissionResult is the outcome of one submission attempt or status query.
// It is never modified after creation.
type SubmissionResult struct {
	Signature   solana.Signature
	Status      SubmissionStatus
	Commitment  Commitment
	Slot        uint64
	LedgerError string
	Err         error
}

// Paid is true only for a confirmed transaction. Off-chain effects of an
// interaction must be applied only when Paid returns true.
func (r *SubmissionResult) Paid() bool {
	return r != nil && r.Status == StatusConfirmed
}

func (r *SubmissionResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s %s: %v", r.Signature, r.Status, r.Err)
	}
	return fmt.Sprintf("%s %s", r.Signature, r.Status)
}
