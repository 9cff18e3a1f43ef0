// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

const dynamoKeyAttribute = "id"

// dynamoNoteStorage stores notes in a DynamoDB table keyed by "id". Scans
// follow the table's own order.
type dynamoNoteStorage struct {
	client    DynamoAPI
	tableName string

	logger *logger.Logger
}

// NewDynamoNoteStorage loads the default AWS configuration for cfg.Region
// and returns a [NoteStorage] backed by cfg.TableName. A non-empty
// cfg.Endpoint overrides the service endpoint (DynamoDB Local).
func NewDynamoNoteStorage(ctx context.Context, cfg config.Dynamo, logger *logger.Logger) (NoteStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		logger.Err(err).Str("func", "NewDynamoNoteStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewDynamoNoteStorageWithClient(client, cfg.TableName, logger), nil
}

// NewDynamoNoteStorageWithClient wraps an existing DynamoDB client.
func NewDynamoNoteStorageWithClient(client DynamoAPI, tableName string, logger *logger.Logger) NoteStorage {
	logger.Debug().Str("table", tableName).Msg("creating dynamodb note storage")
	return &dynamoNoteStorage{client: client, tableName: tableName, logger: logger}
}

func (d *dynamoNoteStorage) PutNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	item, err := attributevalue.MarshalMap(note)
	if err != nil {
		return fmt.Errorf("%w: marshal note: %w", ErrPutFailed, err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.Name(dynamoKeyAttribute).AttributeNotExists()).
		Build()
	if err != nil {
		return fmt.Errorf("%w: build condition: %w", ErrPutFailed, err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("%w: %s", ErrNoteAlreadyExists, note.ID)
		}

		log.Err(err).
			Str("func", "*dynamoNoteStorage.PutNote").
			Str("api_error", dynamoErrorCode(err)).
			Msg("error putting note")
		return fmt.Errorf("%w: %w", ErrPutFailed, err)
	}

	return nil
}

func (d *dynamoNoteStorage) ScanNotes(ctx context.Context, in ScanInput) (ScanOutput, error) {
	log := logger.FromContext(ctx)

	if in.Limit <= 0 {
		return ScanOutput{}, fmt.Errorf("%w: limit must be positive", ErrScanFailed)
	}

	input := &dynamodb.ScanInput{
		TableName: aws.String(d.tableName),
		Limit:     aws.Int32(int32(in.Limit)),
	}

	if in.Sentiment != "" {
		expr, err := expression.NewBuilder().
			WithFilter(expression.Name("sentiment").Equal(expression.Value(string(in.Sentiment)))).
			Build()
		if err != nil {
			return ScanOutput{}, fmt.Errorf("%w: build filter: %w", ErrScanFailed, err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	if in.StartKey != "" {
		input.ExclusiveStartKey = map[string]types.AttributeValue{
			dynamoKeyAttribute: &types.AttributeValueMemberS{Value: in.StartKey},
		}
	}

	out, err := d.client.Scan(ctx, input)
	if err != nil {
		code := dynamoErrorCode(err)
		log.Err(err).
			Str("func", "*dynamoNoteStorage.ScanNotes").
			Str("api_error", code).
			Msg("error scanning notes")

		if code == "ValidationException" && in.StartKey != "" {
			return ScanOutput{}, fmt.Errorf("%w: %w", ErrInvalidStartKey, err)
		}
		return ScanOutput{}, fmt.Errorf("%w: %w", ErrScanFailed, err)
	}

	notes := make([]models.Note, 0, len(out.Items))
	if err = attributevalue.UnmarshalListOfMaps(out.Items, &notes); err != nil {
		return ScanOutput{}, fmt.Errorf("%w: unmarshal notes: %w", ErrScanFailed, err)
	}

	result := ScanOutput{Items: notes, ScannedCount: int(out.ScannedCount)}
	if key, ok := out.LastEvaluatedKey[dynamoKeyAttribute].(*types.AttributeValueMemberS); ok {
		result.LastEvaluatedKey = key.Value
	}

	return result, nil
}

func (d *dynamoNoteStorage) Ping(ctx context.Context) error {
	_, err := d.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(d.tableName)})
	if err != nil {
		return fmt.Errorf("describe table %s: %w", d.tableName, err)
	}
	return nil
}

// dynamoErrorCode returns the API error code carried by err, or "" when err
// did not come from the service.
func dynamoErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
