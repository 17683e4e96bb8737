package repository

import (
	"context"
	"errors"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type jobRecord struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	Title         string `dynamodbav:"title"`
	Status        string `dynamodbav:"status"`
	Notes         string `dynamodbav:"notes"`
	ScheduledDate string `dynamodbav:"scheduled_date"`
	EstimateID    string `dynamodbav:"estimate_id"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// ScheduledDate is stored as an RFC3339 string, empty when unscheduled.
type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobRecord(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var rec jobRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Job{}, err
	}
	return fromJobRecord(rec), nil
}

func (r *JobDynamoRepository) List(ctx context.Context) ([]entities.Job, error) {
	var jobs []entities.Job
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var rec jobRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			jobs = append(jobs, fromJobRecord(rec))
		}
		if out.LastEvaluatedKey == nil {
			return jobs, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *JobDynamoRepository) Save(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobRecord(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrRecordNotFound
		}
		return entities.Job{}, err
	}
	return j, nil
}

func toJobRecord(j entities.Job) jobRecord {
	return jobRecord{
		ID:            j.ID,
		CustomerID:    j.CustomerID,
		Title:         j.Title,
		Status:        string(j.Status),
		Notes:         j.Notes,
		ScheduledDate: formatOptionalTime(j.ScheduledDate),
		EstimateID:    j.EstimateID,
		CreatedAt:     formatTime(j.CreatedAt),
		UpdatedAt:     formatTime(j.UpdatedAt),
	}
}

func fromJobRecord(rec jobRecord) entities.Job {
	return entities.Job{
		ID:            rec.ID,
		CustomerID:    rec.CustomerID,
		Title:         rec.Title,
		Status:        entities.JobStatus(rec.Status),
		Notes:         rec.Notes,
		ScheduledDate: parseOptionalTime(rec.ScheduledDate),
		EstimateID:    rec.EstimateID,
		CreatedAt:     parseTime(rec.CreatedAt),
		UpdatedAt:     parseTime(rec.UpdatedAt),
	}
}
