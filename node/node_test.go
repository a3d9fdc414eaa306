package node

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type recordingService struct {
	name    string
	journal *[]string
	failOn  bool
}

func (s *recordingService) Start(node *Node) error {
	if s.failOn {
		return errors.New("boom")
	}
	*s.journal = append(*s.journal, "start "+s.name)
	return nil
}

func (s *recordingService) Stop() error {
	*s.journal = append(*s.journal, "stop "+s.name)
	return nil
}

func testNodeConfig() Config {
	return Config{Name: "paygated"}
}

func register(n *Node, name string, journal *[]string, fail bool) {
	_ = n.Register(name, func(ctx *ServiceContext) (Service, error) {
		return &recordingService{name: name, journal: journal, failOn: fail}, nil
	})
}

// Tests that a node can be started, restarted and stopped.
func TestNodeLifeCycle(t *testing.T) {
	a := assert.New(t)
	cfg := testNodeConfig()
	stack, err := New(&cfg)
	a.NoError(err)

	var journal []string
	register(stack, "a", &journal, false)
	register(stack, "b", &journal, false)

	a.NoError(stack.Start())
	a.NoError(stack.Restart())
	a.NoError(stack.Stop())
	a.Equal([]string{"start a", "start b", "stop b", "stop a", "start a", "start b", "stop b", "stop a"}, journal)

	a.Equal(ErrNodeStopped, stack.Stop())
	stack.Wait()
}

func TestNodeStartRollback(t *testing.T) {
	a := assert.New(t)
	cfg := testNodeConfig()
	stack, _ := New(&cfg)

	var journal []string
	register(stack, "a", &journal, false)
	register(stack, "b", &journal, true)

	a.Error(stack.Start())
	a.Equal([]string{"start a", "stop a"}, journal)
}

func TestNodeDuplicateService(t *testing.T) {
	a := assert.New(t)
	cfg := testNodeConfig()
	stack, _ := New(&cfg)

	var journal []string
	register(stack, "a", &journal, false)
	register(stack, "a", &journal, false)

	err := stack.Start()
	_, ok := err.(*DuplicateServiceError)
	a.True(ok)
}

func TestServiceLookup(t *testing.T) {
	a := assert.New(t)
	cfg := testNodeConfig()
	stack, _ := New(&cfg)
	var journal []string
	register(stack, "a", &journal, false)
	_ = stack.Register("b", func(ctx *ServiceContext) (Service, error) {
		s, err := ctx.Service("a")
		a.NoError(err)
		a.NotNil(s)
		_, err = ctx.Service("missing")
		a.Equal(ErrServiceUnknown, err)
		return &recordingService{name: "b", journal: &journal}, nil
	})
	a.NoError(stack.Start())
	_, err := stack.Service("b")
	a.NoError(err)
	a.NoError(stack.Stop())
}

func TestInvalidName(t *testing.T) {
	_, err := New(&Config{Name: "a/b"})
	assert.Error(t, err)
}
