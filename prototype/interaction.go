package prototype

import (
	"strings"

	"github.com/pkg/errors"
)

type InteractionType uint8

const (
	InteractionPost InteractionType = iota + 1
	InteractionComment
	InteractionUpvote
)

var interactionNames = map[InteractionType]string{
	InteractionPost:    "post",
	InteractionComment: "comment",
	InteractionUpvote:  "upvote",
}

func (t InteractionType) String() string {
	if name, ok := interactionNames[t]; ok {
		return name
	}
	return "unknown"
}

// HasAuthor tells whether part of the cost is owed to a content author.
// A post pays the platform only.
func (t InteractionType) HasAuthor() bool {
	return t == InteractionComment || t == InteractionUpvote
}

func (t InteractionType) Validate() error {
	if _, ok := interactionNames[t]; !ok {
		return errors.Wrapf(ErrUnknownInteraction, "type %d", uint8(t))
	}
	return nil
}

func ParseInteractionType(s string) (InteractionType, error) {
	for t, name := range interactionNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownInteraction, "%q", s)
}

func (t InteractionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
