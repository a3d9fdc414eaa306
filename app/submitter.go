package app

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slackernews/paygate/common/constants"
	"github.com/slackernews/paygate/iservices"
	"github.com/slackernews/paygate/prototype"
)

type SubmitterConfig struct {
	Commitment     prototype.Commitment
	PollInterval   time.Duration
	ConfirmTimeout time.Duration
}

func DefaultSubmitterConfig() SubmitterConfig {
	return SubmitterConfig{
		Commitment:     prototype.CommitmentConfirmed,
		PollInterval:   constants.DefaultPollIntervalMs * time.Millisecond,
		ConfirmTimeout: constants.DefaultConfirmTimeoutMs * time.Millisecond,
	}
}

// Submitter broadcasts fully signed transactions once and waits for them to
// reach the configured commitment.
type Submitter struct {
	ledger  iservices.ILedger
	tracker *Tracker
	bus     EventBus.Bus
	cfg     SubmitterConfig
	log     *logrus.Logger
}

// NewSubmitter creates a submitter. bus may be nil when nobody listens for
// outcomes.
func NewSubmitter(ledger iservices.ILedger, tracker *Tracker, bus EventBus.Bus, cfg SubmitterConfig, logger *logrus.Logger) *Submitter {
	return &Submitter{ledger: ledger, tracker: tracker, bus: bus, cfg: cfg, log: logger}
}

// Submit verifies, broadcasts and confirms tx. The returned error equals the
// result's Err; only a missing signature or a duplicate in flight yield no
// result at all.
func (s *Submitter) Submit(ctx context.Context, tx *solana.Transaction) (*prototype.SubmissionResult, error) {
	if err := verifySigned(tx); err != nil {
		return nil, err
	}
	sig := tx.Signatures[0]

	recorded, err := s.tracker.Begin(sig, tx.Message.RecentBlockhash)
	if err != nil {
		return nil, err
	}
	if recorded != nil {
		s.log.WithField("sig", sig).Info("returning recorded outcome")
		return recorded, recorded.Err
	}

	res := s.broadcastAndConfirm(ctx, sig, tx)
	s.tracker.Finish(res)
	s.publish(res)
	return res, res.Err
}

func verifySigned(tx *solana.Transaction) error {
	if tx == nil {
		return prototype.ErrEmptyTransaction
	}
	if tx.Message.Header.NumRequiredSignatures == 0 || len(tx.Signatures) == 0 {
		return errors.Wrap(prototype.ErrIncompleteSignature, "transaction carries no signatures")
	}
	if missing := prototype.MissingSigners(tx); len(missing) > 0 {
		return errors.Wrapf(prototype.ErrIncompleteSignature, "missing signature of %s", missing[0])
	}
	if err := tx.VerifySignatures(); err != nil {
		return errors.Wrap(prototype.ErrIncompleteSignature, err.Error())
	}
	return nil
}

func (s *Submitter) broadcastAndConfirm(ctx context.Context, sig solana.Signature, tx *solana.Transaction) *prototype.SubmissionResult {
	logger := s.log.WithField("sig", sig)

	sent, err := s.ledger.SendTransaction(ctx, tx)
	if errors.Is(err, prototype.ErrBroadcastRejected) {
		logger.WithError(err).Warn("transaction rejected")
		return &prototype.SubmissionResult{Signature: sig, Status: prototype.StatusRejected, Err: err}
	}
	if err != nil {
		// the node may have forwarded the transaction before failing
		logger.WithError(err).Warn("broadcast outcome unknown")
		return &prototype.SubmissionResult{
			Signature: sig,
			Status:    prototype.StatusTimedOut,
			Err:       errors.Wrapf(prototype.ErrConfirmationTimeout, "broadcast outcome unknown: %v", err),
		}
	}
	if sent != sig {
		logger.WithField("returned", sent).Warn("rpc node returned a different signature")
	}
	logger.Info("transaction broadcast")
	return s.await(ctx, sig)
}

func (s *Submitter) await(ctx context.Context, sig solana.Signature) *prototype.SubmissionResult {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmTimeout)
	defer cancel()
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		st, err := s.ledger.GetSignatureStatus(ctx, sig)
		if err != nil && ctx.Err() == nil {
			s.log.WithFields(logrus.Fields{"sig": sig, "err": err}).Debug("status poll failed")
		}
		if res := s.settled(sig, st); res != nil {
			return res
		}
		select {
		case <-ctx.Done():
			s.log.WithField("sig", sig).Warn("confirmation timed out")
			return &prototype.SubmissionResult{
				Signature: sig,
				Status:    prototype.StatusTimedOut,
				Err:       errors.Wrapf(prototype.ErrConfirmationTimeout, "no %s commitment within %s", s.cfg.Commitment, s.cfg.ConfirmTimeout),
			}
		case <-ticker.C:
		}
	}
}

// settled maps a status read to a final result, or nil while still pending.
func (s *Submitter) settled(sig solana.Signature, st *prototype.SignatureStatus) *prototype.SubmissionResult {
	if st == nil {
		return nil
	}
	if st.Err != "" {
		return &prototype.SubmissionResult{
			Signature:   sig,
			Status:      prototype.StatusFailed,
			Commitment:  st.ConfirmationStatus,
			Slot:        st.Slot,
			LedgerError: st.Err,
			Err:         errors.WithMessage(prototype.ErrLedgerExecution, st.Err),
		}
	}
	if st.ConfirmationStatus.Reaches(s.cfg.Commitment) {
		return &prototype.SubmissionResult{
			Signature:  sig,
			Status:     prototype.StatusConfirmed,
			Commitment: st.ConfirmationStatus,
			Slot:       st.Slot,
		}
	}
	return nil
}

// Status reads the current state of sig once. A previously timed out
// submission that has since settled is recorded and announced exactly once,
// however many queries race on it.
func (s *Submitter) Status(ctx context.Context, sig solana.Signature) (*prototype.SubmissionResult, error) {
	recorded, blockhash, known := s.tracker.Lookup(sig)
	if recorded != nil && recorded.Status != prototype.StatusTimedOut {
		return recorded, nil
	}

	st, err := s.ledger.GetSignatureStatus(ctx, sig)
	if err != nil {
		return nil, err
	}
	res := s.settled(sig, st)
	switch {
	case res != nil:
	case st != nil:
		return &prototype.SubmissionResult{
			Signature:  sig,
			Status:     prototype.StatusBroadcast,
			Commitment: st.ConfirmationStatus,
			Slot:       st.Slot,
		}, nil
	case !known:
		return nil, errors.Wrapf(prototype.ErrUnknownSignature, "%s", sig)
	default:
		valid, err := s.ledger.IsCheckpointValid(ctx, blockhash)
		if err != nil {
			return nil, err
		}
		if valid {
			return &prototype.SubmissionResult{Signature: sig, Status: prototype.StatusBroadcast}, nil
		}
		res = &prototype.SubmissionResult{
			Signature: sig,
			Status:    prototype.StatusExpired,
			Err:       errors.Wrap(prototype.ErrConfirmationTimeout, "blockhash expired before the transaction landed"),
		}
	}

	if recorded == nil {
		return res, nil
	}
	winner, settled := s.tracker.Settle(res)
	if settled {
		s.publish(res)
		return res, nil
	}
	if winner != nil {
		return winner, nil
	}
	return res, nil
}

func (s *Submitter) publish(res *prototype.SubmissionResult) {
	if s.bus == nil {
		return
	}
	var topic string
	switch res.Status {
	case prototype.StatusConfirmed:
		topic = constants.NoticeTrxConfirmed
	case prototype.StatusFailed:
		topic = constants.NoticeTrxFailed
	case prototype.StatusTimedOut, prototype.StatusExpired:
		topic = constants.NoticeTrxTimedOut
	case prototype.StatusRejected:
		topic = constants.NoticeTrxRejected
	default:
		return
	}
	s.bus.Publish(topic, res)
}
