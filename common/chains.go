package common

import (
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/common/constants"
)

type Cluster struct {
	Name        string
	Mint        string
	RPCEndpoint string
}

var clusters = map[string]Cluster{
	constants.ClusterMainnet: {
		Name:        constants.ClusterMainnet,
		Mint:        constants.USDCMintMainnet,
		RPCEndpoint: constants.RPCEndpointMainnet,
	},
	constants.ClusterDevnet: {
		Name:        constants.ClusterDevnet,
		Mint:        constants.USDCMintDevnet,
		RPCEndpoint: constants.RPCEndpointDevnet,
	},
}

// GetClusterByName returns the well-known settings of a cluster.
func GetClusterByName(name string) (Cluster, error) {
	if c, ok := clusters[name]; ok {
		return c, nil
	}
	return Cluster{}, errors.Errorf("unknown cluster %q", name)
}

// ResolveCluster starts from the named cluster and applies non-empty
// endpoint and mint overrides. Without a name both endpoint and mint are
// required and describe a custom cluster.
func ResolveCluster(name, endpoint, mint string) (Cluster, error) {
	if name == "" {
		if endpoint == "" || mint == "" {
			return Cluster{}, errors.New("a custom cluster needs both rpc endpoint and mint")
		}
		return Cluster{Name: constants.ClusterCustom, RPCEndpoint: endpoint, Mint: mint}, nil
	}
	c, err := GetClusterByName(name)
	if err != nil {
		return c, err
	}
	if endpoint != "" {
		c.RPCEndpoint = endpoint
	}
	if mint != "" {
		c.Mint = mint
	}
	return c, nil
}
