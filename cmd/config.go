package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost                 string
	KafkaOrderChangedTopic    string
	KafkaPaymentChangedTopic  string
	KafkaDeliveryChangedTopic string

	RedisAddr      string
	RedisPassword  string
	IdempotencyTTL time.Duration

	DigestCron        string
	Location          *time.Location
	LogLevel          string
	OpenAPIValidation bool
}

// DSN returns the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
