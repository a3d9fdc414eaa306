package app

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slackernews/paygate/common"
	"github.com/slackernews/paygate/iservices"
	"github.com/slackernews/paygate/node"
	"github.com/slackernews/paygate/prototype"
	"github.com/slackernews/paygate/rpc"
	"github.com/slackernews/paygate/wallet"
)

// PayGateService runs a PayGate inside a node.
type PayGateService struct {
	ctx *node.ServiceContext
	log *logrus.Logger
	pg  *PayGate
}

func NewPayGateService(ctx *node.ServiceContext) (*PayGateService, error) {
	s := &PayGateService{ctx: ctx, log: logrus.New()}
	if l, err := ctx.Service(iservices.LogServerName); err == nil {
		s.log = l.(iservices.ILog).GetLog()
	}
	return s, nil
}

func (s *PayGateService) Start(n *node.Node) error {
	cfg := s.ctx.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	cluster, err := common.ResolveCluster(cfg.Ledger.Cluster, cfg.Ledger.RPCEndpoint, cfg.Ledger.Mint)
	if err != nil {
		return errors.WithMessage(prototype.ErrConfiguration, err.Error())
	}
	mint, err := prototype.ParseAddress(cluster.Mint)
	if err != nil {
		return errors.WithMessage(prototype.ErrConfiguration, err.Error())
	}
	commitment, err := prototype.ParseCommitment(cfg.Ledger.Commitment)
	if err != nil {
		return err
	}
	signer, err := wallet.LoadPlatformSigner(cfg.Signer.SecretKey)
	if err != nil {
		return err
	}
	ledger, err := rpc.Dial(cluster.RPCEndpoint, cfg.Ledger, s.log)
	if err != nil {
		return err
	}
	s.pg, err = NewPayGate(ledger, signer, n.EvBus, Config{
		Mint:  mint,
		Split: prototype.DefaultRevenueSplit(),
		Submit: SubmitterConfig{
			Commitment:     commitment,
			PollInterval:   time.Duration(cfg.Ledger.PollIntervalMs) * time.Millisecond,
			ConfirmTimeout: time.Duration(cfg.Ledger.ConfirmTimeoutMs) * time.Millisecond,
		},
	}, s.log)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"cluster":  cluster.Name,
		"endpoint": cluster.RPCEndpoint,
		"mint":     mint,
		"treasury": signer.PublicKey(),
	}).Info("paygate started")
	return nil
}

func (s *PayGateService) Stop() error {
	s.pg = nil
	return nil
}

// Gateway returns the running gateway, nil before Start.
func (s *PayGateService) Gateway() iservices.IPayGate {
	if s.pg == nil {
		return nil
	}
	return s.pg
}
