/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/storagemodels"
)

// DocumentStore implements docstore.DocumentStore on a DynamoDB table.
//
// Documents live in a table keyed by ModelId (partition) and IndexName
// (sort), so one identifier can hold a document per index generation.
// Sorting the sort key descending yields the latest generation first,
// mirroring a search engine's index-name sort.
type DocumentStore struct {
	client    *sdk.Client
	tableName string
}

// record is the table item shape.
type record struct {
	ModelID   string `dynamodbav:"ModelId"`
	IndexName string `dynamodbav:"IndexName"`
	Payload   []byte `dynamodbav:"Payload"`
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// New constructs a DocumentStore over the given table.
func New(awsAccessKey, awsSecretKey, awsRegion, tableName string) (*DocumentStore, error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return &DocumentStore{
		client:    client,
		tableName: tableName,
	}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *sdk.Client, tableName string) *DocumentStore {
	return &DocumentStore{client: client, tableName: tableName}
}

// CreateOnly writes a new document item, conditioned on the key not
// existing yet. DynamoDB's conditional put is atomic per key, which is
// the create-only guarantee the provider consumes.
func (d *DocumentStore) CreateOnly(ctx context.Context, index, id string, payload []byte) error {
	av, err := attributevalue.MarshalMap(record{
		ModelID:   id,
		IndexName: index,
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal document record: %w", err)
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &d.tableName,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(ModelId) AND attribute_not_exists(IndexName)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return fmt.Errorf("document %q in index %q: %w", id, index, errors.ErrConflict)
		}
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// SearchLatest queries the identifier's partition for items whose index
// name matches the pattern prefix, newest index generation first.
func (d *DocumentStore) SearchLatest(ctx context.Context, params *storagemodels.SearchParams) ([]storagemodels.Hit, error) {
	keyCond, exprVals, err := patternKeyCondition(params.DocID, params.Pattern)
	if err != nil {
		return nil, err
	}

	input := &sdk.QueryInput{
		TableName:                 &d.tableName,
		KeyConditionExpression:    &keyCond,
		ExpressionAttributeValues: exprVals,
	}
	if params.Size > 0 {
		input.Limit = aws.Int32(int32(params.Size))
	}
	if params.SortIndexDesc {
		input.ScanIndexForward = aws.Bool(false)
	}

	out, err := d.client.Query(ctx, input)
	if err != nil {
		var rnf *types.ResourceNotFoundException
		if stderrors.As(err, &rnf) {
			return nil, fmt.Errorf("table %q: %w", d.tableName, errors.ErrIndexNotFound)
		}
		return nil, fmt.Errorf("query error: %w", err)
	}

	hits := make([]storagemodels.Hit, 0, len(out.Items))
	for _, item := range out.Items {
		var rec record
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document record: %w", err)
		}
		hits = append(hits, storagemodels.Hit{
			Index:  rec.IndexName,
			DocID:  rec.ModelID,
			Source: rec.Payload,
		})
	}
	return hits, nil
}

// DeleteByID removes the identifier's documents across every index
// generation matching the pattern and returns the number removed.
// Individual deletions that race with concurrent writers are skipped
// rather than aborting the sweep.
func (d *DocumentStore) DeleteByID(ctx context.Context, params *storagemodels.DeleteParams) (int64, error) {
	keyCond, exprVals, err := patternKeyCondition(params.DocID, params.Pattern)
	if err != nil {
		return 0, err
	}

	var deleted int64
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		input := &sdk.QueryInput{
			TableName:                 &d.tableName,
			KeyConditionExpression:    &keyCond,
			ExpressionAttributeValues: exprVals,
			ExclusiveStartKey:         lastEvaluatedKey,
		}

		out, err := d.client.Query(ctx, input)
		if err != nil {
			var rnf *types.ResourceNotFoundException
			if stderrors.As(err, &rnf) {
				return 0, fmt.Errorf("table %q: %w", d.tableName, errors.ErrIndexNotFound)
			}
			return deleted, fmt.Errorf("query error: %w", err)
		}

		for _, item := range out.Items {
			_, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
				TableName: &d.tableName,
				Key: map[string]types.AttributeValue{
					"ModelId":   item["ModelId"],
					"IndexName": item["IndexName"],
				},
				ConditionExpression: aws.String("attribute_exists(ModelId)"),
			})
			if err != nil {
				var cfe *types.ConditionalCheckFailedException
				if stderrors.As(err, &cfe) {
					// Already gone; keep sweeping.
					continue
				}
				return deleted, fmt.Errorf("failed to delete document: %w", err)
			}
			deleted++
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	return deleted, nil
}

// patternKeyCondition builds the key condition matching an identifier
// across the index pattern. Patterns may end in a single "*" wildcard
// (prefix match) or name one index exactly.
func patternKeyCondition(id, pattern string) (string, map[string]types.AttributeValue, error) {
	prefix, wildcard, err := patternPrefix(pattern)
	if err != nil {
		return "", nil, err
	}

	exprVals := map[string]types.AttributeValue{
		":id": &types.AttributeValueMemberS{Value: id},
	}
	if !wildcard {
		exprVals[":index"] = &types.AttributeValueMemberS{Value: prefix}
		return "ModelId = :id AND IndexName = :index", exprVals, nil
	}
	exprVals[":prefix"] = &types.AttributeValueMemberS{Value: prefix}
	return "ModelId = :id AND begins_with(IndexName, :prefix)", exprVals, nil
}

// patternPrefix splits an index pattern into its literal prefix.
func patternPrefix(pattern string) (prefix string, wildcard bool, err error) {
	if pattern == "" {
		return "", false, fmt.Errorf("empty index pattern")
	}
	i := strings.IndexByte(pattern, '*')
	if i < 0 {
		return pattern, false, nil
	}
	if i != len(pattern)-1 {
		return "", false, fmt.Errorf("unsupported index pattern %q: wildcard must be trailing", pattern)
	}
	return pattern[:i], true, nil
}
