package prototype

import (
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/common/constants"
)

type Commitment string

const (
	CommitmentProcessed Commitment = constants.CommitmentProcessed
	CommitmentConfirmed Commitment = constants.CommitmentConfirmed
	CommitmentFinalized Commitment = constants.CommitmentFinalized
)

func (c Commitment) rank() int {
	switch c {
	case CommitmentProcessed:
		return 1
	case CommitmentConfirmed:
		return 2
	case CommitmentFinalized:
		return 3
	default:
		return 0
	}
}

// Reaches tells whether c is at least as durable as required.
func (c Commitment) Reaches(required Commitment) bool {
	return c.rank() > 0 && c.rank() >= required.rank()
}

func ParseCommitment(s string) (Commitment, error) {
	c := Commitment(s)
	if c.rank() == 0 {
		return "", errors.Wrapf(ErrConfiguration, "unknown commitment %q", s)
	}
	return c, nil
}
