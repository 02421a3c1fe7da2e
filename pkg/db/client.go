package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	Client  *dynamodb.Client
	once    sync.Once // connects to aws only once per container
	initErr error
)

// NewDynamoDBClient initializes the shared connection to dynamodb.
// Later calls return the outcome of the first one.
func NewDynamoDBClient(ctx context.Context, region string) error {
	once.Do(func() {
		cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
		if err != nil {
			initErr = fmt.Errorf("unable to load SDK config: %w", err)
			return
		}

		Client = dynamodb.NewFromConfig(cfg)
		slog.Info("DynamoDB Connection Established", "region", region)
	})

	return initErr
}
