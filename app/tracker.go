package app

import (
	"github.com/gagliardetto/solana-go"
	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/sasha-s/go-deadlock"
	"github.com/slackernews/paygate/prototype"
)

type tracked struct {
	blockhash solana.Hash
	result    *prototype.SubmissionResult // nil while in flight
}

// Tracker remembers recent submissions by signature so that a signed
// transaction is broadcast at most once.
type Tracker struct {
	lock  deadlock.Mutex
	cache *lru.Cache
}

func NewTracker(size int) (*Tracker, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Tracker{cache: cache}, nil
}

// Begin registers sig as in flight. If sig is already known it returns the
// recorded outcome, or ErrDuplicateSubmission while it is still in flight.
func (t *Tracker) Begin(sig solana.Signature, blockhash solana.Hash) (*prototype.SubmissionResult, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if v, ok := t.cache.Get(sig); ok {
		rec := v.(*tracked)
		if rec.result == nil {
			return nil, errors.Wrapf(prototype.ErrDuplicateSubmission, "%s is in flight", sig)
		}
		return rec.result, nil
	}
	t.cache.Add(sig, &tracked{blockhash: blockhash})
	return nil, nil
}

// Finish records the outcome of a submission. A rejected transaction never
// reached the ledger and is forgotten so it may be submitted again.
func (t *Tracker) Finish(res *prototype.SubmissionResult) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if res.Status == prototype.StatusRejected {
		t.cache.Remove(res.Signature)
		return
	}
	rec := &tracked{result: res}
	if v, ok := t.cache.Peek(res.Signature); ok {
		rec.blockhash = v.(*tracked).blockhash
	}
	t.cache.Add(res.Signature, rec)
}

// Settle replaces a timed out outcome of res.Signature with res. It reports
// false and returns the outcome already recorded when another caller settled
// it first or the signature is not timed out.
func (t *Tracker) Settle(res *prototype.SubmissionResult) (*prototype.SubmissionResult, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()

	v, ok := t.cache.Peek(res.Signature)
	if !ok {
		return res, false
	}
	rec := v.(*tracked)
	if rec.result == nil || rec.result.Status != prototype.StatusTimedOut {
		return rec.result, false
	}
	t.cache.Add(res.Signature, &tracked{blockhash: rec.blockhash, result: res})
	return res, true
}

// Lookup returns the recorded outcome and bound blockhash of sig.
func (t *Tracker) Lookup(sig solana.Signature) (res *prototype.SubmissionResult, blockhash solana.Hash, ok bool) {
	t.lock.Lock()
	defer t.lock.Unlock()

	v, ok := t.cache.Get(sig)
	if !ok {
		return nil, solana.Hash{}, false
	}
	rec := v.(*tracked)
	return rec.result, rec.blockhash, true
}

func (t *Tracker) Len() int {
	return t.cache.Len()
}
