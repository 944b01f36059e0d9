package config

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const EnvProduction = "production"

type Config struct {
	Port      string        `env:"PORT,      default=5000"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	HashCost  int           `env:"HASH_COST, default=12"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// TrustedProxies lists the IPs or CIDR ranges whose X-Forwarded-For
	// header is honoured. Empty means the socket peer is the client.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	Mongo     MongoConfig
	Redis     RedisConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// CORSConfig holds the built-in origins that are always allowed in addition
// to the ones stored in the database.
type CORSConfig struct {
	ProductionOrigins  []string `env:"CORS_PRODUCTION_ORIGINS"`
	DevelopmentOrigins []string `env:"CORS_DEVELOPMENT_ORIGINS, default=http://localhost:3000,http://localhost:5173"`
}

type RateLimitConfig struct {
	Max    int64         `env:"RATE_LIMIT_MAX,    default=20"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// BuiltinOrigins returns the origin set for the running environment.
func (c *Config) BuiltinOrigins() []string {
	if c.IsProduction() {
		return c.CORS.ProductionOrigins
	}
	return c.CORS.DevelopmentOrigins
}

// TrustedProxyNets parses TrustedProxies. A bare IP becomes a single-host
// range.
func (c *Config) TrustedProxyNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			ip := net.ParseIP(raw)
			if ip == nil {
				return nil, fmt.Errorf("config: invalid TRUSTED_PROXIES entry %q", raw)
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipnet, err := net.ParseCIDR(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid TRUSTED_PROXIES entry %q: %w", raw, err)
		}
		nets = append(nets, ipnet)
	}
	return nets, nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// LoadFrom is Load with an explicit lookuper, used by tests.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
