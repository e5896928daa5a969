package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"

	"procurement_sync/internal/domain"
)

type Config struct {
	Region    string
	Endpoint  string
	TableName string
}

// CheckpointStore keeps one item per job name, keyed by job_name.
type CheckpointStore struct {
	client    dynamodbiface.DynamoDBAPI
	tableName string
}

type checkpointItem struct {
	JobName   string `dynamodbav:"job_name"`
	Position  string `dynamodbav:"position"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

func NewCheckpointStore(cfg Config) (*CheckpointStore, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	// DynamoDB Local
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return NewCheckpointStoreWithClient(dynamodb.New(sess), cfg.TableName), nil
}

func NewCheckpointStoreWithClient(client dynamodbiface.DynamoDBAPI, tableName string) *CheckpointStore {
	return &CheckpointStore{client: client, tableName: tableName}
}

// EnsureTable creates the checkpoint table when it is missing.
func (s *CheckpointStore) EnsureTable(ctx context.Context) error {
	_, err := s.client.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.tableName),
	})
	if err == nil {
		return nil
	}
	var aerr awserr.Error
	if !errors.As(err, &aerr) || aerr.Code() != dynamodb.ErrCodeResourceNotFoundException {
		return fmt.Errorf("describe table %s: %w", s.tableName, err)
	}

	_, err = s.client.CreateTableWithContext(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.tableName),
		KeySchema: []*dynamodb.KeySchemaElement{
			{AttributeName: aws.String("job_name"), KeyType: aws.String(dynamodb.KeyTypeHash)},
		},
		AttributeDefinitions: []*dynamodb.AttributeDefinition{
			{AttributeName: aws.String("job_name"), AttributeType: aws.String(dynamodb.ScalarAttributeTypeS)},
		},
		BillingMode: aws.String(dynamodb.BillingModePayPerRequest),
	})
	if err != nil {
		return fmt.Errorf("create table %s: %w", s.tableName, err)
	}

	return s.client.WaitUntilTableExistsWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.tableName),
	})
}

func (s *CheckpointStore) Get(ctx context.Context, jobName string) (*domain.Checkpoint, error) {
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		ConsistentRead: aws.Bool(true),
		Key: map[string]*dynamodb.AttributeValue{
			"job_name": {S: aws.String(jobName)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get checkpoint %s: %w", jobName, err)
	}

	if out.Item == nil {
		return &domain.Checkpoint{JobName: jobName}, nil
	}

	var item checkpointItem
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshal checkpoint %s: %w", jobName, err)
	}

	cp := &domain.Checkpoint{JobName: item.JobName, Position: item.Position}
	if item.UpdatedAt != "" {
		updatedAt, err := time.Parse(time.RFC3339Nano, item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse checkpoint %s time: %w", jobName, err)
		}
		cp.UpdatedAt = updatedAt
	}
	return cp, nil
}

func (s *CheckpointStore) Upsert(ctx context.Context, cp *domain.Checkpoint) error {
	item, err := dynamodbattribute.MarshalMap(checkpointItem{
		JobName:   cp.JobName,
		Position:  cp.Position,
		UpdatedAt: cp.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal checkpoint %s: %w", cp.JobName, err)
	}

	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put checkpoint %s: %w", cp.JobName, err)
	}
	return nil
}
