package notifications

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSAPI is the part of *sns.Client the publisher needs
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Publisher sends plain text messages to one fixed SNS target.
type Publisher struct {
	Client    SNSAPI
	TargetArn string
}

func NewPublisher(client SNSAPI, targetArn string) (*Publisher, error) {
	if targetArn == "" {
		return nil, fmt.Errorf("notification target arn is not set")
	}

	if client == nil {
		return nil, fmt.Errorf("sns client is not initialized")
	}

	return &Publisher{
		Client:    client,
		TargetArn: targetArn,
	}, nil
}

// Publish sends message as-is. MessageStructure stays unset so subscribers
// receive the raw text rather than a per-protocol JSON document.
func (p *Publisher) Publish(ctx context.Context, message string) (string, error) {
	input := &sns.PublishInput{
		TargetArn: aws.String(p.TargetArn),
		Message:   aws.String(message),
	}

	out, err := p.Client.Publish(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to publish notification to sns: %w", err)
	}

	if out == nil {
		return "", nil
	}
	return aws.ToString(out.MessageId), nil
}
