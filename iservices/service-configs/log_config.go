package service_configs

type LogConfig struct {
	Level string `toml:"Level"`
	// Path of the rotating log file, empty for stdout only
	Path        string `toml:"Path,omitempty"`
	MaxAgeHours uint32 `toml:"MaxAgeHours"`
}
