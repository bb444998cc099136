package config

const (
	defaultConfigPath     = "~/.config/plexquery/config.toml"
	defaultProjectConfig  = "plexquery.toml"
	defaultAddress        = "127.0.0.1"
	defaultPort           = 32400
	defaultTimeoutSeconds = 10
	defaultMaxBodyMiB     = 32
	defaultOutputFormat   = OutputAuto
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Address:        defaultAddress,
			Port:           defaultPort,
			TimeoutSeconds: defaultTimeoutSeconds,
			MaxBodyMiB:     defaultMaxBodyMiB,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
