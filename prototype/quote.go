package prototype

import (
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/common/constants"
)

// RevenueSplit is the author's part of a payment in basis points of
// constants.PERCENT. The platform receives the rest.
type RevenueSplit struct {
	AuthorBps uint64
}

func DefaultRevenueSplit() RevenueSplit {
	return RevenueSplit{AuthorBps: constants.RewardRateAuthor}
}

func (s RevenueSplit) PlatformBps() uint64 {
	return constants.PERCENT - s.AuthorBps
}

func (s RevenueSplit) Validate() error {
	if s.AuthorBps > constants.PERCENT {
		return errors.Wrapf(ErrInvalidSplit, "author share %d exceeds %d", s.AuthorBps, constants.PERCENT)
	}
	return nil
}

// Quote is the priced form of one interaction.
// AuthorShare + PlatformShare == Total always holds.
type Quote struct {
	Type          InteractionType `json:"type"`
	Total         uint64          `json:"total"`
	AuthorShare   uint64          `json:"authorShare"`
	PlatformShare uint64          `json:"platformShare"`
}
