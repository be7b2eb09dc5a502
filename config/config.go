// config/config.go
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Database      DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Auth          AuthConfiguration
	RateLimit     RateLimitConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for the Postgres connection
type DatabaseConfiguration struct {
	DSN string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	PoolTimeout  time.Duration
}

// ElasticsearchConfiguration stores data for the audit sink
type ElasticsearchConfiguration struct {
	URL string
}

// AuthConfiguration stores access-resolution settings. TenantExemptPaths and
// AuthExemptPaths are independent prefix sets; a path may be in neither,
// either, or both.
type AuthConfiguration struct {
	JwksURL           string
	Issuer            string
	CacheTTL          time.Duration
	NegativeCacheTTL  time.Duration
	TenantExemptPaths []string
	AuthExemptPaths   []string
}

// RateLimitConfiguration stores the per-operation limit table. Operations
// absent from the table are not limited.
type RateLimitConfiguration struct {
	Operations map[string]OperationLimit
}

// OperationLimit bounds one named operation per identifier within a fixed
// window.
type OperationLimit struct {
	MaxAttempts int
	Window      time.Duration
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "host=localhost user=flexpass password=flexpass dbname=flexpass port=5432 sslmode=disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.poolSize", 10)
	viper.SetDefault("redis.dialTimeout", "5s")
	viper.SetDefault("redis.readTimeout", "3s")
	viper.SetDefault("redis.writeTimeout", "3s")
	viper.SetDefault("redis.poolTimeout", "4s")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("auth.jwksUrl", "http://localhost:4456/.well-known/jwks.json")
	viper.SetDefault("auth.cacheTTL", "10m")
	viper.SetDefault("auth.negativeCacheTTL", "1m")
	viper.SetDefault("auth.tenantExemptPaths", []string{"/healthz", "/api/v1/account", "/password-reset"})
	viper.SetDefault("auth.authExemptPaths", []string{"/healthz", "/password-reset"})
	viper.SetDefault("rateLimit.operations.password_reset.maxAttempts", 3)
	viper.SetDefault("rateLimit.operations.password_reset.window", "1h")
	viper.SetDefault("log.file", "logging/api.log")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return Validate(config)
}

// Validate rejects configurations that would break the cache contract: a
// negative entry must never outlive a positive one, otherwise a fresh
// membership could stay masked longer than a stale grant.
func Validate(c *Configuration) error {
	if c.Auth.NegativeCacheTTL > c.Auth.CacheTTL {
		return fmt.Errorf("auth.negativeCacheTTL (%s) must not exceed auth.cacheTTL (%s)",
			c.Auth.NegativeCacheTTL, c.Auth.CacheTTL)
	}
	for name, op := range c.RateLimit.Operations {
		if op.MaxAttempts <= 0 {
			return fmt.Errorf("rateLimit.operations.%s.maxAttempts must be positive", name)
		}
		if op.Window <= 0 {
			return fmt.Errorf("rateLimit.operations.%s.window must be positive", name)
		}
	}
	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice retrieves a string slice value from the configuration
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
