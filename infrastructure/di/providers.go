package di

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"paper-backend/application/ports"
	"paper-backend/application/services"
	"paper-backend/infrastructure/config"
	"paper-backend/infrastructure/persistence/mongodb"
	"paper-backend/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	MongoClient   *mongo.Client
	FolderRepo    ports.FolderRepository
	FolderService *services.FolderService
	JWTValidator  *auth.JWTValidator
}

// Close releases resources held by the container
func (c *Container) Close(ctx context.Context) error {
	if c.MongoClient != nil {
		return c.MongoClient.Disconnect(ctx)
	}
	return nil
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideMongoClient connects the process-wide MongoDB client. The client
// owns the connection pool shared by every request; it is built exactly once
// here and reused for the process lifetime.
func ProvideMongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// ProvideMongoDatabase selects the application database
func ProvideMongoDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.MongoDatabase)
}

// ProvideFolderRepository creates the MongoDB folder repository
func ProvideFolderRepository(db *mongo.Database, logger *zap.Logger) ports.FolderRepository {
	return mongodb.NewFolderRepository(db, logger)
}

// ProvideFolderService creates the folder service
func ProvideFolderService(repo ports.FolderRepository, logger *zap.Logger) *services.FolderService {
	return services.NewFolderService(repo, logger)
}

// ProvideJWTValidator creates the JWT validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		// Config validation rejects this in production.
		secret = "development-secret-change-in-production"
	}

	return auth.NewJWTValidator(auth.JWTConfig{
		SigningMethod: "HS256",
		SecretKey:     secret,
		Issuer:        cfg.JWTIssuer,
	})
}
