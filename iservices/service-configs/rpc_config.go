package service_configs

type LedgerConfig struct {
	// Cluster selects the default endpoint and payment mint: mainnet or devnet
	Cluster     string `toml:"Cluster"`
	RPCEndpoint string `toml:"RPCEndpoint"`
	// Mint overrides the cluster's USDC mint when set
	Mint             string `toml:"Mint,omitempty"`
	Commitment       string `toml:"Commitment"`
	ConfirmTimeoutMs uint32 `toml:"ConfirmTimeoutMs"`
	PollIntervalMs   uint32 `toml:"PollIntervalMs"`
	RequestsPerSec   uint32 `toml:"RequestsPerSec"`
	ReadRetries      uint32 `toml:"ReadRetries"`
	// SendMaxRetries caps the node's rebroadcast of a submitted transaction,
	// 0 keeps the node default of retrying until the blockhash expires
	SendMaxRetries uint32 `toml:"SendMaxRetries,omitempty"`
}

type HTTPConfig struct {
	Listen   string   `toml:"Listen"`
	HTTPCors []string `toml:"HTTPCors,omitempty"`
}
