package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	DBMaxConns         int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns         int32         `env:"DB_MIN_CONNS" envDefault:"1"`
	DBConnectTimeout   time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	PopulationCacheTTL time.Duration `env:"POPULATION_CACHE_TTL" envDefault:"1h"`
	JWTSecret          string        `env:"JWT_SECRET"`
	JWTIssuer          string        `env:"JWT_ISSUER" envDefault:"attrition-risk"`
	JWTAccessTTL       time.Duration `env:"JWT_ACCESS_TTL" envDefault:"8h"`
	GeneratorSeed      uint64        `env:"GENERATOR_SEED" envDefault:"42"`
	GeneratorSize      int           `env:"GENERATOR_DEFAULT_SIZE" envDefault:"5000"`
	GeneratorMaxSize   int           `env:"GENERATOR_MAX_SIZE" envDefault:"50000"`
	BatchConcurrency   int           `env:"BATCH_CONCURRENCY" envDefault:"8"`
	MetricsEndpoint    string        `env:"OTEL_METRICS_ENDPOINT"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
