package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"train-occupancy/config"
)

const maxConnectRetries = 30

// Connect establishes a connection to the PostgreSQL database
func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	for i := 0; i < maxConnectRetries; i++ {
		err = db.Ping()
		if err == nil {
			log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Connected to database")
			return db, nil
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max", maxConnectRetries).Msg("Failed to connect to database")
		time.Sleep(2 * time.Second)
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxConnectRetries, err)
}
