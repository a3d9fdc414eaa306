//go:build !devnet
// +build !devnet

package constants

const (
	DefaultCluster = ClusterMainnet

	ClientName = "paygate"
)
