package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

var (
	Client  *sns.Client
	once    sync.Once
	initErr error
)

// NewSNSClient initializes the shared sns client used for notifications
func NewSNSClient(ctx context.Context, region string) error {
	once.Do(func() {
		cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
		if err != nil {
			initErr = fmt.Errorf("unable to load SDK config: %w", err)
			return
		}

		Client = sns.NewFromConfig(cfg)
		slog.Info("SNS Client Ready", "region", region)
	})

	return initErr
}
