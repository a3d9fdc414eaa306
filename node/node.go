package node

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type NamedServiceConstructor struct {
	name        string
	constructor ServiceConstructor
}

type namedService struct {
	name    string
	service Service
}

// Node owns the gateway's services. They start in registration order and
// stop in reverse.
type Node struct {
	config *Config

	// EvBus carries outcome notices between services.
	EvBus EventBus.Bus
	Log   *logrus.Logger

	lock         sync.RWMutex
	constructors []NamedServiceConstructor
	running      []namedService
	byName       map[string]Service
	stop         chan struct{}
}

func New(conf *Config) (*Node, error) {
	cfg := *conf
	if cfg.DataDir != "" {
		dir, err := filepath.Abs(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}
	// the name becomes a directory under DataDir
	if strings.ContainsAny(cfg.Name, `/\`) {
		return nil, errors.New(`Config.Name must not contain '/' or '\'`)
	}
	return &Node{
		config: &cfg,
		EvBus:  EventBus.New(),
		Log:    logrus.New(),
	}, nil
}

func (n *Node) Config() *Config {
	return n.config
}

// Register queues a service constructor; it runs on the next Start.
func (n *Node) Register(name string, constructor ServiceConstructor) error {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.constructors = append(n.constructors, NamedServiceConstructor{name: name, constructor: constructor})
	return nil
}

// Start constructs every registered service, then starts them in order. When
// one fails to start, those already started are stopped again.
func (n *Node) Start() error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if err := n.checkDataDir(); err != nil {
		return err
	}

	byName := make(map[string]Service, len(n.constructors))
	built := make([]namedService, 0, len(n.constructors))
	for _, c := range n.constructors {
		// constructors see the services built before them
		ctx := &ServiceContext{config: n.config, services: byName}
		svc, err := c.constructor(ctx)
		if err != nil {
			return errors.Wrapf(err, "construct service %s", c.name)
		}
		if _, dup := byName[c.name]; dup {
			return &DuplicateServiceError{Kind: c.name}
		}
		byName[c.name] = svc
		built = append(built, namedService{c.name, svc})
	}

	for i, s := range built {
		if err := s.service.Start(n); err != nil {
			stopAll(built[:i])
			return errors.Wrapf(err, "start service %s", s.name)
		}
	}

	n.running, n.byName = built, byName
	n.stop = make(chan struct{})
	return nil
}

func stopAll(services []namedService) map[string]error {
	failed := make(map[string]error)
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].service.Stop(); err != nil {
			failed[services[i].name] = err
		}
	}
	return failed
}

func (n *Node) checkDataDir() error {
	if n.config.DataDir == "" {
		return nil
	}
	dir := n.config.instanceDir()
	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "instance dir %s (run `init` first)", dir)
	}
	return nil
}

func (n *Node) Stop() error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.stop == nil {
		return ErrNodeStopped
	}
	failed := stopAll(n.running)
	n.running, n.byName = nil, nil
	close(n.stop)
	n.stop = nil

	if len(failed) > 0 {
		return &StopError{Services: failed}
	}
	return nil
}

// Wait blocks until the node is stopped.
func (n *Node) Wait() {
	n.lock.RLock()
	stop := n.stop
	n.lock.RUnlock()

	if stop != nil {
		<-stop
	}
}

func (n *Node) Restart() error {
	if err := n.Stop(); err != nil {
		return err
	}
	return n.Start()
}

// Service returns a running service by name.
func (n *Node) Service(name string) (interface{}, error) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	if svc, ok := n.byName[name]; ok {
		return svc, nil
	}
	return nil, ErrServiceUnknown
}
