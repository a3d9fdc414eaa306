package service_configs

type SignerConfig struct {
	// SecretKey is the base58 platform keypair (64 bytes) or seed (32 bytes).
	// It is never written to the config file, only read from SecretEnv.
	SecretKey string `toml:"-"`
	SecretEnv string `toml:"SecretEnv"`
}
