package economist

import (
	"math/bits"

	"github.com/pkg/errors"
	"github.com/slackernews/paygate/common/constants"
	"github.com/slackernews/paygate/prototype"
)

var costs = map[prototype.InteractionType]uint64{
	prototype.InteractionPost:    constants.CostPost,
	prototype.InteractionComment: constants.CostComment,
	prototype.InteractionUpvote:  constants.CostUpvote,
}

// Cost returns the total price of an interaction in base units.
func Cost(t prototype.InteractionType) (uint64, error) {
	if c, ok := costs[t]; ok {
		return c, nil
	}
	return 0, errors.Wrapf(prototype.ErrUnknownInteraction, "no cost for %s", t)
}

// Split divides total between author and platform. The author gets the
// floor of its share, the platform everything else, so no unit is lost.
// A split above PERCENT yields ErrInvalidSplit.
func Split(total uint64, split prototype.RevenueSplit) (author, platform uint64, err error) {
	if err = split.Validate(); err != nil {
		return 0, 0, err
	}
	// hi < PERCENT because AuthorBps <= PERCENT, so Div64 cannot overflow
	hi, lo := bits.Mul64(total, split.AuthorBps)
	author, _ = bits.Div64(hi, lo, constants.PERCENT)
	platform = total - author
	return author, platform, nil
}

type Economist struct {
	split prototype.RevenueSplit
}

func New(split prototype.RevenueSplit) (*Economist, error) {
	if err := split.Validate(); err != nil {
		return nil, err
	}
	return &Economist{split: split}, nil
}

func (e *Economist) RevenueSplit() prototype.RevenueSplit {
	return e.split
}

// Quote prices t. Interactions without an author pay the platform the whole
// cost.
func (e *Economist) Quote(t prototype.InteractionType) (*prototype.Quote, error) {
	total, err := Cost(t)
	if err != nil {
		return nil, err
	}
	q := &prototype.Quote{Type: t, Total: total}
	if t.HasAuthor() {
		if q.AuthorShare, q.PlatformShare, err = Split(total, e.split); err != nil {
			return nil, err
		}
	} else {
		q.PlatformShare = total
	}
	return q, nil
}
