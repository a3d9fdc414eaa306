package rpc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	solrpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slackernews/paygate/iservices/service-configs"
	"github.com/slackernews/paygate/prototype"
	"golang.org/x/time/rate"
)

// json-rpc codes a node returns while it is catching up or overloaded.
var transientCodes = map[int]bool{
	-32004: true, // block not available
	-32005: true, // node unhealthy
	-32014: true, // block status not yet available
	429:    true,
}

// Client implements iservices.ILedger on top of a Solana json-rpc endpoint.
// Reads are rate limited and retried; SendTransaction is attempted once and
// left to the node's own rebroadcast of the same signed bytes.
type Client struct {
	rpc         *solrpc.Client
	commitment  solrpc.CommitmentType
	limiter     *rate.Limiter
	retries     uint
	sendRetries *uint // nil leaves rebroadcast to the node default
	log         *logrus.Logger
}

func Dial(endpoint string, cfg service_configs.LedgerConfig, log *logrus.Logger) (*Client, error) {
	if endpoint == "" {
		return nil, errors.WithMessage(prototype.ErrConfiguration, "empty rpc endpoint")
	}
	commitment, err := prototype.ParseCommitment(cfg.Commitment)
	if err != nil {
		return nil, err
	}
	limit := rate.Inf
	if cfg.RequestsPerSec > 0 {
		limit = rate.Limit(cfg.RequestsPerSec)
	}
	burst := int(cfg.RequestsPerSec)
	if burst < 1 {
		burst = 1
	}
	if log == nil {
		log = logrus.New()
	}
	var sendRetries *uint
	if cfg.SendMaxRetries > 0 {
		n := uint(cfg.SendMaxRetries)
		sendRetries = &n
	}
	return &Client{
		rpc:         solrpc.New(endpoint),
		commitment:  solrpc.CommitmentType(commitment),
		limiter:     rate.NewLimiter(limit, burst),
		retries:     uint(cfg.ReadRetries) + 1,
		sendRetries: sendRetries,
		log:         log,
	}, nil
}

// read runs a side-effect free call with rate limiting and exponential retry.
func read[T any](ctx context.Context, c *Client, method string, op func() (T, error)) (T, error) {
	return backoff.Retry(ctx, func() (T, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			var zero T
			return zero, backoff.Permanent(err)
		}
		v, err := op()
		if err == nil {
			return v, nil
		}
		if !isTransient(err) {
			return v, backoff.Permanent(err)
		}
		c.log.WithFields(logrus.Fields{"method": method, "err": err}).Debug("retrying ledger read")
		return v, err
	}, backoff.WithBackOff(newBackOff()), backoff.WithMaxTries(c.retries))
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	return b
}

func isTransient(err error) bool {
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		return transientCodes[rpcErr.Code]
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) GetAccount(ctx context.Context, address solana.PublicKey) (*prototype.LedgerAccount, error) {
	acc, err := read(ctx, c, "getAccountInfo", func() (*prototype.LedgerAccount, error) {
		out, err := c.rpc.GetAccountInfoWithOpts(ctx, address, &solrpc.GetAccountInfoOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: c.commitment,
		})
		if errors.Is(err, solrpc.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if out == nil || out.Value == nil {
			return nil, nil
		}
		return toLedgerAccount(address, out.Value), nil
	})
	return acc, errors.Wrapf(err, "get account %s", address)
}

func toLedgerAccount(address solana.PublicKey, v *solrpc.Account) *prototype.LedgerAccount {
	acc := &prototype.LedgerAccount{
		Address:  address,
		Owner:    v.Owner,
		Lamports: v.Lamports,
	}
	if v.Data != nil {
		acc.Data = v.Data.GetBinary()
	}
	return acc
}

func (c *Client) GetLatestCheckpoint(ctx context.Context) (*prototype.Checkpoint, error) {
	cp, err := read(ctx, c, "getLatestBlockhash", func() (*prototype.Checkpoint, error) {
		out, err := c.rpc.GetLatestBlockhash(ctx, c.commitment)
		if err != nil {
			return nil, err
		}
		if out == nil || out.Value == nil {
			return nil, errors.New("empty blockhash response")
		}
		return &prototype.Checkpoint{
			Blockhash:            out.Value.Blockhash,
			LastValidBlockHeight: out.Value.LastValidBlockHeight,
		}, nil
	})
	return cp, errors.Wrap(err, "get latest blockhash")
}

func (c *Client) IsCheckpointValid(ctx context.Context, blockhash solana.Hash) (bool, error) {
	valid, err := read(ctx, c, "isBlockhashValid", func() (bool, error) {
		out, err := c.rpc.IsBlockhashValid(ctx, blockhash, c.commitment)
		if err != nil {
			return false, err
		}
		return out != nil && out.Value, nil
	})
	return valid, errors.Wrap(err, "check blockhash")
}

// SendTransaction hands tx to the node exactly once. The node keeps
// forwarding those same bytes to leaders until the blockhash expires, which
// cannot double charge since a signature lands at most once. Preflight runs
// at the client's commitment so a transaction doomed to fail is refused
// before it lands.
func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return solana.Signature{}, err
	}
	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, solrpc.TransactionOpts{
		PreflightCommitment: c.commitment,
		MaxRetries:          c.sendRetries,
	})
	if err != nil {
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			return solana.Signature{}, errors.Wrapf(prototype.ErrBroadcastRejected, "%d: %s", rpcErr.Code, rpcErr.Message)
		}
		return solana.Signature{}, errors.Wrap(err, "send transaction")
	}
	return sig, nil
}

func (c *Client) GetSignatureStatus(ctx context.Context, sig solana.Signature) (*prototype.SignatureStatus, error) {
	st, err := read(ctx, c, "getSignatureStatuses", func() (*prototype.SignatureStatus, error) {
		out, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return nil, err
		}
		if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
			return nil, nil
		}
		v := out.Value[0]
		st := &prototype.SignatureStatus{
			Slot:               v.Slot,
			Confirmations:      v.Confirmations,
			ConfirmationStatus: prototype.Commitment(v.ConfirmationStatus),
		}
		if v.Err != nil {
			raw, _ := json.Marshal(v.Err)
			st.Err = string(raw)
		}
		return st, nil
	})
	return st, errors.Wrapf(err, "get status of %s", sig)
}

func (c *Client) GetTokenAccountsByOwner(ctx context.Context, owner, mint solana.PublicKey) ([]*prototype.LedgerAccount, error) {
	accs, err := read(ctx, c, "getTokenAccountsByOwner", func() ([]*prototype.LedgerAccount, error) {
		out, err := c.rpc.GetTokenAccountsByOwner(ctx, owner,
			&solrpc.GetTokenAccountsConfig{Mint: mint.ToPointer()},
			&solrpc.GetTokenAccountsOpts{Encoding: solana.EncodingBase64, Commitment: c.commitment})
		if err != nil {
			return nil, err
		}
		var accs []*prototype.LedgerAccount
		if out == nil {
			return accs, nil
		}
		for _, v := range out.Value {
			if v == nil || v.Account == nil {
				continue
			}
			accs = append(accs, toLedgerAccount(v.Pubkey, v.Account))
		}
		return accs, nil
	})
	return accs, errors.Wrapf(err, "list token accounts of %s", owner)
}
