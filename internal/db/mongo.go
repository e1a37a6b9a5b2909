package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/santanu2402/Alumni-Management-System/internal/config"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/metrics"
)

const connectTimeout = 10 * time.Second

// MongoDB wraps the driver client together with the selected database.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to MongoDB using the application configuration and
// verifies the connection with a ping before returning.
func NewMongoDB(ctx context.Context, cfg *config.DatabaseConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	start := time.Now()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	metrics.ObserveDBPing(time.Since(start))

	logger.Info().Str("database", cfg.Name).Msg("Connected to MongoDB")

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Name),
	}, nil
}

// Ping verifies the connection is still alive.
func (m *MongoDB) Ping(ctx context.Context) error {
	start := time.Now()
	if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}
	metrics.ObserveDBPing(time.Since(start))
	return nil
}

// Close disconnects from MongoDB.
func (m *MongoDB) Close(ctx context.Context) error {
	logger.Info().Msg("Closing MongoDB connection")
	return m.Client.Disconnect(ctx)
}
