package devices

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Fleexa-Graduation-Project/relief-button/models"
)

type RegistrationStore struct {
	Client    DynamoDBAPI
	TableName string
}

func NewRegistrationStore(client DynamoDBAPI, tableName string) (*RegistrationStore, error) {
	if tableName == "" {
		return nil, fmt.Errorf("registration table name is not set")
	}

	if client == nil {
		return nil, fmt.Errorf("dynamodb client is not initialized")
	}

	return &RegistrationStore{
		Client:    client,
		TableName: tableName,
	}, nil
}

// Get looks the device up by exact key. A nil registration with a nil error
// means the device is not registered.
func (store *RegistrationStore) Get(ctx context.Context, deviceID string) (*models.DeviceRegistration, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(store.TableName),
		Key: map[string]types.AttributeValue{
			keyDeviceID: &types.AttributeValueMemberS{Value: deviceID},
		},
		// a registration written just before the click must be visible
		ConsistentRead: aws.Bool(true),
	}

	out, err := store.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get registration from dynamodb: %w", err)
	}

	if out == nil || out.Item == nil {
		return nil, nil
	}

	var reg models.DeviceRegistration
	if err := attributevalue.UnmarshalMap(out.Item, &reg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal registration: %w", err)
	}

	return &reg, nil
}
