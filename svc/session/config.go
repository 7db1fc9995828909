package session

import "time"

// Store drivers accepted by Config.Driver.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	Driver      string        `env:"SESSION_STORE" envDefault:"memory"`
	RedisPrefix string        `env:"SESSION_REDIS_PREFIX" envDefault:"sourcefeed:session:"`
	RedisTTL    time.Duration `env:"SESSION_REDIS_TTL" envDefault:"0s"`
}

// DefaultConfig returns the in-memory configuration.
func DefaultConfig() Config {
	return Config{
		Driver:      DriverMemory,
		RedisPrefix: DefaultRedisPrefix,
	}
}

// RedisOptions converts the config into RedisStore options.
func (c Config) RedisOptions() []RedisOption {
	opts := make([]RedisOption, 0, 2)
	if c.RedisPrefix != "" {
		opts = append(opts, WithPrefix(c.RedisPrefix))
	}
	if c.RedisTTL > 0 {
		opts = append(opts, WithTTL(c.RedisTTL))
	}
	return opts
}
