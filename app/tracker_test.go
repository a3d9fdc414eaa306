package app

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/prototype"
	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	a := assert.New(t)
	tr, err := NewTracker(2)
	a.NoError(err)

	var sig solana.Signature
	sig[0] = 1
	hash := solana.Hash{7}

	rec, err := tr.Begin(sig, hash)
	a.NoError(err)
	a.Nil(rec)

	_, err = tr.Begin(sig, hash)
	a.True(errors.Is(err, prototype.ErrDuplicateSubmission))

	res := &prototype.SubmissionResult{Signature: sig, Status: prototype.StatusTimedOut}
	tr.Finish(res)
	rec, err = tr.Begin(sig, hash)
	a.NoError(err)
	a.Equal(res, rec)

	got, bh, ok := tr.Lookup(sig)
	a.True(ok)
	a.Equal(res, got)
	a.Equal(hash, bh)
}

func TestTrackerForgetsRejected(t *testing.T) {
	a := assert.New(t)
	tr, _ := NewTracker(8)
	var sig solana.Signature
	sig[0] = 2

	_, _ = tr.Begin(sig, solana.Hash{})
	tr.Finish(&prototype.SubmissionResult{Signature: sig, Status: prototype.StatusRejected})
	_, _, ok := tr.Lookup(sig)
	a.False(ok)

	rec, err := tr.Begin(sig, solana.Hash{})
	a.NoError(err)
	a.Nil(rec)
}

func TestTrackerEvictsOldest(t *testing.T) {
	a := assert.New(t)
	tr, _ := NewTracker(2)
	for i := byte(0); i < 3; i++ {
		var sig solana.Signature
		sig[0] = i
		_, _ = tr.Begin(sig, solana.Hash{})
	}
	a.Equal(2, tr.Len())
	_, _, ok := tr.Lookup(solana.Signature{})
	a.False(ok)
}

func TestTrackerSettlesTimedOutOnce(t *testing.T) {
	a := assert.New(t)
	tr, _ := NewTracker(8)
	var sig solana.Signature
	sig[0] = 3
	hash := solana.Hash{5}

	_, _ = tr.Begin(sig, hash)
	_, ok := tr.Settle(&prototype.SubmissionResult{Signature: sig, Status: prototype.StatusConfirmed})
	a.False(ok, "in flight submissions belong to their submitter")

	tr.Finish(&prototype.SubmissionResult{Signature: sig, Status: prototype.StatusTimedOut})
	first := &prototype.SubmissionResult{Signature: sig, Status: prototype.StatusConfirmed}
	got, ok := tr.Settle(first)
	a.True(ok)
	a.Equal(first, got)

	got, ok = tr.Settle(&prototype.SubmissionResult{Signature: sig, Status: prototype.StatusExpired})
	a.False(ok)
	a.Equal(first, got)

	rec, bh, _ := tr.Lookup(sig)
	a.Equal(first, rec)
	a.Equal(hash, bh)

	var other solana.Signature
	other[0] = 4
	_, ok = tr.Settle(&prototype.SubmissionResult{Signature: other, Status: prototype.StatusConfirmed})
	a.False(ok)
}
