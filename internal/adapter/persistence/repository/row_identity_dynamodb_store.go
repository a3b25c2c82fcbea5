package repository

import (
	"context"

	"psaops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRowIdentitiesTableName = "row_identities"

type rowIdentityItem struct {
	EstimateID string `dynamodbav:"estimate_id"`
	RowKey     string `dynamodbav:"row_key"`
	LineItemID string `dynamodbav:"line_item_id"`
}

// RowIdentityDynamoStore persists row-slot to line-item-id bookkeeping in
// DynamoDB.
//
// Table requirements:
//   - PK: estimate_id (string), SK: row_key (string)

type RowIdentityDynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRowIdentityStore = (*RowIdentityDynamoStore)(nil)

func NewRowIdentityDynamoStore(ddb *dynamodb.Client) *RowIdentityDynamoStore {
	return &RowIdentityDynamoStore{
		ddb:       ddb,
		tableName: getenvDefault("ROW_IDENTITIES_TABLE", defaultRowIdentitiesTableName),
	}
}

func (s *RowIdentityDynamoStore) Get(ctx context.Context, estimateID, rowKey string) (string, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"estimate_id": &types.AttributeValueMemberS{Value: estimateID},
			"row_key":     &types.AttributeValueMemberS{Value: rowKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it rowIdentityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.LineItemID, nil
}

func (s *RowIdentityDynamoStore) Set(ctx context.Context, estimateID, rowKey, lineItemID string) error {
	av, err := attributevalue.MarshalMap(rowIdentityItem{
		EstimateID: estimateID,
		RowKey:     rowKey,
		LineItemID: lineItemID,
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *RowIdentityDynamoStore) Clear(ctx context.Context, estimateID, rowKey string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"estimate_id": &types.AttributeValueMemberS{Value: estimateID},
			"row_key":     &types.AttributeValueMemberS{Value: rowKey},
		},
	})
	return err
}

func (s *RowIdentityDynamoStore) List(ctx context.Context, estimateID string) (map[string]string, error) {
	ids := map[string]string{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			KeyConditionExpression: aws.String("#estimate_id = :estimate_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
			},
			ExpressionAttributeNames: map[string]string{
				"#estimate_id": "estimate_id",
			},
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it rowIdentityItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ids[it.RowKey] = it.LineItemID
		}

		if len(out.LastEvaluatedKey) == 0 {
			return ids, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
