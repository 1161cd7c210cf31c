package server

import (
	"context"
	"database/sql"
	"fmt"

	"orders-api/internal/config"
	"orders-api/internal/database"
	"orders-api/internal/repositories"
	dynamorepo "orders-api/internal/repositories/dynamodb"
	sqliterepo "orders-api/internal/repositories/sqlite"
	"orders-api/internal/services"

	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *logrus.Logger
	OrderService services.OrderService

	db *sql.DB
}

// NewContainer creates a new dependency injection container. The repository
// backend is selected from configuration: DynamoDB in serverless mode,
// SQLite in server mode, or none at all when no table is configured (the
// dry-run path where orders are processed without being persisted).
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := config.NewLogger(cfg)

	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	orderRepo, err := container.buildOrderRepository(ctx)
	if err != nil {
		return nil, err
	}

	container.OrderService = services.NewOrderService(orderRepo, logger)
	return container, nil
}

// buildOrderRepository selects and constructs the repository backend
func (c *Container) buildOrderRepository(ctx context.Context) (repositories.OrderRepository, error) {
	switch c.Config.Database.RepositoryType {
	case "dynamodb":
		if c.Config.Orders.TableName == "" {
			c.Logger.Info("No table name configured, persistence disabled")
			return nil, nil
		}

		client, err := dynamorepo.NewClient(ctx, c.Config.Orders.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
		}

		return dynamorepo.NewOrderRepository(client, c.Config.Orders.TableName, c.Logger), nil

	case "sqlite":
		db, err := database.Connect(&database.ConnectionConfig{
			DatabasePath:   c.Config.Database.ConnectionString,
			MigrationsPath: c.Config.Database.MigrationsPath,
			MaxOpenConns:   1,
			MaxIdleConns:   1,
			Logger:         c.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		c.db = db
		return sqliterepo.NewOrderRepository(db, c.Logger), nil

	case "none", "":
		c.Logger.Info("Persistence disabled by configuration")
		return nil, nil

	default:
		return nil, fmt.Errorf("unsupported repository type: %s", c.Config.Database.RepositoryType)
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		c.db = nil
	}

	return nil
}
