//go:build devnet
// +build devnet

package constants

const (
	DefaultCluster = ClusterDevnet

	ClientName = "paygate-devnet"
)
