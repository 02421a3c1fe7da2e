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

type StateStore struct {
	Client    DynamoDBAPI
	TableName string
}

func NewStateStore(client DynamoDBAPI, tableName string) (*StateStore, error) {
	if tableName == "" {
		return nil, fmt.Errorf("state table name is not set")
	}

	if client == nil {
		return nil, fmt.Errorf("dynamodb client is not initialized")
	}

	return &StateStore{
		Client:    client,
		TableName: tableName,
	}, nil
}

// Put overwrites the device's whole state item, last write wins. It returns
// the state the item held before, or "" when the device had no item yet.
func (store *StateStore) Put(ctx context.Context, state models.DeviceState) (string, error) {
	item, err := attributevalue.MarshalMap(state)
	if err != nil {
		return "", fmt.Errorf("failed to marshal device state: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:    aws.String(store.TableName),
		Item:         item,
		ReturnValues: types.ReturnValueAllOld,
	}

	out, err := store.Client.PutItem(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to store device state in dynamodb: %w", err)
	}

	if out == nil || len(out.Attributes) == 0 {
		return "", nil
	}

	var previous models.DeviceState
	if err := attributevalue.UnmarshalMap(out.Attributes, &previous); err != nil {
		return "", fmt.Errorf("failed to unmarshal previous device state: %w", err)
	}

	return previous.State, nil
}
