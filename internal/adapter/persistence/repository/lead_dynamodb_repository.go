package repository

import (
	"context"
	"errors"
	"time"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "intake_leads"

type leadRecord struct {
	ID                    string `dynamodbav:"id"`
	Name                  string `dynamodbav:"name"`
	Email                 string `dynamodbav:"email"`
	Phone                 string `dynamodbav:"phone"`
	Zip                   string `dynamodbav:"zip"`
	Line1                 string `dynamodbav:"address_line1"`
	Line2                 string `dynamodbav:"address_line2"`
	City                  string `dynamodbav:"address_city"`
	State                 string `dynamodbav:"address_state"`
	PostalCode            string `dynamodbav:"address_postal_code"`
	Message               string `dynamodbav:"message"`
	Status                string `dynamodbav:"status"`
	Source                string `dynamodbav:"source"`
	ContactMethod         string `dynamodbav:"contact_method"`
	ConvertedToCustomerID string `dynamodbav:"converted_to_customer_id"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead (intake) entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// MarkConverted carries the convert-at-most-once guard: the conditional
// update fails when the stored status is already Converted, and the zero
// value is returned in that case.
type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadRecord(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var rec leadRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadRecord(rec), nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	var leads []entities.Lead
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
			var rec leadRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			leads = append(leads, fromLeadRecord(rec))
		}
		if out.LastEvaluatedKey == nil {
			return leads, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *LeadDynamoRepository) Save(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadRecord(l))
	if err != nil {
		return entities.Lead{}, err
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
			return entities.Lead{}, interfaces.ErrRecordNotFound
		}
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) MarkConverted(ctx context.Context, id, customerID string) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :converted"),
		UpdateExpression:    aws.String("SET #status = :converted, #converted_to = :customer_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#converted_to": "converted_to_customer_id",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":converted":   &types.AttributeValueMemberS{Value: string(entities.LeadStatusConverted)},
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var rec leadRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadRecord(rec), nil
}

func toLeadRecord(l entities.Lead) leadRecord {
	return leadRecord{
		ID:                    l.ID,
		Name:                  l.Name,
		Email:                 l.Email,
		Phone:                 l.Phone,
		Zip:                   l.Zip,
		Line1:                 l.Address.Line1,
		Line2:                 l.Address.Line2,
		City:                  l.Address.City,
		State:                 l.Address.State,
		PostalCode:            l.Address.PostalCode,
		Message:               l.Message,
		Status:                string(l.Status),
		Source:                l.Source,
		ContactMethod:         l.ContactMethod,
		ConvertedToCustomerID: l.ConvertedToCustomerID,
		CreatedAt:             formatTime(l.CreatedAt),
		UpdatedAt:             formatTime(l.UpdatedAt),
	}
}

func fromLeadRecord(rec leadRecord) entities.Lead {
	return entities.Lead{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
		Phone: rec.Phone,
		Zip:   rec.Zip,
		Address: entities.Address{
			Line1:      rec.Line1,
			Line2:      rec.Line2,
			City:       rec.City,
			State:      rec.State,
			PostalCode: rec.PostalCode,
		},
		Message:               rec.Message,
		Status:                entities.LeadStatus(rec.Status),
		Source:                rec.Source,
		ContactMethod:         rec.ContactMethod,
		ConvertedToCustomerID: rec.ConvertedToCustomerID,
		CreatedAt:             parseTime(rec.CreatedAt),
		UpdatedAt:             parseTime(rec.UpdatedAt),
	}
}
