package dynamodb

import (
	"context"
	"fmt"

	"orders-api/internal/models"
	"orders-api/internal/repositories"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// Client is the subset of the DynamoDB API used by the repository.
// It allows tests to substitute a stub client.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// OrderRepository persists orders to a DynamoDB table keyed by order ID
type OrderRepository struct {
	client    Client
	tableName string
	logger    *logrus.Logger
}

// NewClient creates a DynamoDB client from the default AWS configuration
func NewClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	var optFns []func(*awsconfig.LoadOptions) error
	if region != "" {
		optFns = append(optFns, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return dynamodb.NewFromConfig(cfg), nil
}

// NewOrderRepository creates a new DynamoDB-backed order repository
func NewOrderRepository(client Client, tableName string, logger *logrus.Logger) *OrderRepository {
	if logger == nil {
		logger = logrus.New()
	}

	return &OrderRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Save writes an order to the table, overwriting any existing record
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	if r.tableName == "" {
		return repositories.ErrTableNotConfigured
	}

	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put order %s: %w", order.ID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"table":    r.tableName,
	}).Debug("Order saved")

	return nil
}

// GetByID retrieves an order by its ID
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if r.tableName == "" {
		return nil, repositories.ErrTableNotConfigured
	}

	if id == "" {
		return nil, repositories.ErrInvalidID
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       orderKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}

	if out.Item == nil {
		return nil, repositories.ErrOrderNotFound
	}

	var order models.Order
	if err := attributevalue.UnmarshalMap(out.Item, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order %s: %w", id, err)
	}

	return &order, nil
}

// Delete removes an order by its ID
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	if r.tableName == "" {
		return repositories.ErrTableNotConfigured
	}

	if id == "" {
		return repositories.ErrInvalidID
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       orderKey(id),
	})
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}

	r.logger.WithFields(logrus.Fields{
		"order_id": id,
		"table":    r.tableName,
	}).Debug("Order deleted")

	return nil
}

// orderKey builds the primary key attribute map for an order ID
func orderKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
