package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port           string
	Environment    string
	LoggingConfig  LoggingConfig
	PostgresConfig PostgresConfig
	Neo4jConfig    Neo4jConfig
	RedisConfig    RedisConfig
	EngineConfig   EngineConfig
	WarmerConfig   WarmerConfig
	LiveFareConfig LiveFareConfig
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// PostgresConfig holds PostgreSQL connection configuration for the
// fare-history store. An empty Host means "not configured".
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Neo4jConfig holds Neo4j connection configuration for the graph-backed
// fare-history store. An empty URI means "not configured".
type Neo4jConfig struct {
	URI      string
	User     string
	Password string
}

// RedisConfig holds Redis connection configuration for the recommendation
// cache. An empty Host means "not configured" and disables caching.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// EngineConfig holds the recommendation engine tunables. The pricing and
// ground-transport constants are deliberately configuration, not code: the
// correct values are a product decision.
type EngineConfig struct {
	DefaultRadiusKm      float64
	MaxRadiusKm          float64
	DefaultMaxPerSide    int
	MaxPerSide           int
	MaxPairs             int           // cap on candidate pair evaluations per request
	WorkerPoolSize       int           // concurrent pair evaluations
	HistoryLookupTimeout time.Duration // per historical fare lookup
	RequestDeadline      time.Duration // overall recommendation budget
	MinHistorySamples    int           // aggregate sample floor for the historical tier
	CacheTTL             time.Duration

	// Heuristic fare model: per-km rates banded by route length, then a
	// cabin multiplier.
	ShortHaulMaxKm  float64
	MediumHaulMaxKm float64
	ShortHaulPerKm  float64
	MediumHaulPerKm float64
	LongHaulPerKm   float64
	MinimumFare     float64

	CabinMultiplierPremium  float64
	CabinMultiplierBusiness float64
	CabinMultiplierFirst    float64

	// Ground transport model: distance bands choose the mode; each mode has
	// a fixed cost, a per-km cost and an assumed average speed.
	TaxiMaxKm        float64
	RailMaxKm        float64
	TaxiBaseCost     float64
	TaxiPerKm        float64
	TaxiSpeedKmh     float64
	RailBaseCost     float64
	RailPerKm        float64
	RailSpeedKmh     float64
	ShuttleBaseCost  float64
	ShuttlePerKm     float64
	ShuttleSpeedKmh  float64
	RailAvailability float64 // minimum metro popularity (millions of pax) for rail links

	// TimePenaltyPerMinute converts added ground-transport minutes into an
	// equivalent dollar cost. The single value-of-time knob.
	TimePenaltyPerMinute float64
}

// WarmerConfig holds the cache warmer schedule and route list.
type WarmerConfig struct {
	Enabled  bool
	CronSpec string
	Routes   []string // "JFK-LAX" pairs
}

// LiveFareConfig holds the optional live-fare override source. When enabled,
// a live quote replaces the baseline estimate only.
type LiveFareConfig struct {
	Enabled bool
	BaseURL string
	Timeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LoggingConfig: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		PostgresConfig: PostgresConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "fares"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "fares"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Neo4jConfig: Neo4jConfig{
			URI:      getEnv("NEO4J_URI", ""),
			User:     getEnv("NEO4J_USER", "neo4j"),
			Password: getEnv("NEO4J_PASSWORD", ""),
		},
		RedisConfig: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		EngineConfig:   loadEngineConfig(),
		WarmerConfig:   loadWarmerConfig(),
		LiveFareConfig: loadLiveFareConfig(),
	}, nil
}

func loadEngineConfig() EngineConfig {
	return EngineConfig{
		DefaultRadiusKm:      getEnvFloat("ENGINE_DEFAULT_RADIUS_KM", 150),
		MaxRadiusKm:          getEnvFloat("ENGINE_MAX_RADIUS_KM", 1000),
		DefaultMaxPerSide:    getEnvInt("ENGINE_DEFAULT_MAX_PER_SIDE", 5),
		MaxPerSide:           getEnvInt("ENGINE_MAX_PER_SIDE", 20),
		MaxPairs:             getEnvInt("ENGINE_MAX_PAIRS", 36),
		WorkerPoolSize:       getEnvInt("ENGINE_WORKER_POOL_SIZE", 8),
		HistoryLookupTimeout: getEnvDuration("ENGINE_HISTORY_LOOKUP_TIMEOUT", 250*time.Millisecond),
		RequestDeadline:      getEnvDuration("ENGINE_REQUEST_DEADLINE", 2*time.Second),
		MinHistorySamples:    getEnvInt("ENGINE_MIN_HISTORY_SAMPLES", 5),
		CacheTTL:             getEnvDuration("ENGINE_CACHE_TTL", 15*time.Minute),

		ShortHaulMaxKm:  getEnvFloat("FARE_SHORT_HAUL_MAX_KM", 800),
		MediumHaulMaxKm: getEnvFloat("FARE_MEDIUM_HAUL_MAX_KM", 3500),
		ShortHaulPerKm:  getEnvFloat("FARE_SHORT_HAUL_PER_KM", 0.22),
		MediumHaulPerKm: getEnvFloat("FARE_MEDIUM_HAUL_PER_KM", 0.12),
		LongHaulPerKm:   getEnvFloat("FARE_LONG_HAUL_PER_KM", 0.08),
		MinimumFare:     getEnvFloat("FARE_MINIMUM", 49),

		CabinMultiplierPremium:  getEnvFloat("FARE_CABIN_PREMIUM_ECONOMY", 1.4),
		CabinMultiplierBusiness: getEnvFloat("FARE_CABIN_BUSINESS", 2.5),
		CabinMultiplierFirst:    getEnvFloat("FARE_CABIN_FIRST", 4.0),

		TaxiMaxKm:        getEnvFloat("GROUND_TAXI_MAX_KM", 15),
		RailMaxKm:        getEnvFloat("GROUND_RAIL_MAX_KM", 60),
		TaxiBaseCost:     getEnvFloat("GROUND_TAXI_BASE_COST", 5),
		TaxiPerKm:        getEnvFloat("GROUND_TAXI_PER_KM", 2.2),
		TaxiSpeedKmh:     getEnvFloat("GROUND_TAXI_SPEED_KMH", 35),
		RailBaseCost:     getEnvFloat("GROUND_RAIL_BASE_COST", 8),
		RailPerKm:        getEnvFloat("GROUND_RAIL_PER_KM", 0.35),
		RailSpeedKmh:     getEnvFloat("GROUND_RAIL_SPEED_KMH", 70),
		ShuttleBaseCost:  getEnvFloat("GROUND_SHUTTLE_BASE_COST", 15),
		ShuttlePerKm:     getEnvFloat("GROUND_SHUTTLE_PER_KM", 0.45),
		ShuttleSpeedKmh:  getEnvFloat("GROUND_SHUTTLE_SPEED_KMH", 80),
		RailAvailability: getEnvFloat("GROUND_RAIL_MIN_POPULARITY", 10),

		TimePenaltyPerMinute: getEnvFloat("ENGINE_TIME_PENALTY_PER_MINUTE", 0.5),
	}
}

func loadWarmerConfig() WarmerConfig {
	enabled, _ := strconv.ParseBool(getEnv("WARMER_ENABLED", "false"))
	routes := []string{}
	for _, pair := range strings.Split(getEnv("WARMER_ROUTES", ""), ",") {
		pair = strings.TrimSpace(strings.ToUpper(pair))
		if pair != "" {
			routes = append(routes, pair)
		}
	}
	return WarmerConfig{
		Enabled:  enabled,
		CronSpec: getEnv("WARMER_CRON", "@every 30m"),
		Routes:   routes,
	}
}

func loadLiveFareConfig() LiveFareConfig {
	enabled, _ := strconv.ParseBool(getEnv("LIVE_FARE_ENABLED", "false"))
	return LiveFareConfig{
		Enabled: enabled,
		BaseURL: getEnv("LIVE_FARE_BASE_URL", ""),
		Timeout: getEnvDuration("LIVE_FARE_TIMEOUT", 800*time.Millisecond),
	}
}

// TestConfig returns a default configuration for tests: no external stores,
// text logging, warmer off.
func TestConfig() *Config {
	cfg, _ := Load()
	cfg.Environment = "test"
	cfg.LoggingConfig = LoggingConfig{Level: "error", Format: "text"}
	cfg.PostgresConfig.Host = ""
	cfg.Neo4jConfig.URI = ""
	cfg.RedisConfig.Host = ""
	cfg.WarmerConfig.Enabled = false
	cfg.LiveFareConfig.Enabled = false
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}
