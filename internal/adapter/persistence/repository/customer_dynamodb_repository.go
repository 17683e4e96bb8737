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

const defaultCustomersTableName = "customers"

type customerRecord struct {
	ID         string `dynamodbav:"id"`
	FirstName  string `dynamodbav:"first_name"`
	LastName   string `dynamodbav:"last_name"`
	Phone      string `dynamodbav:"phone"`
	Email      string `dynamodbav:"email"`
	Line1      string `dynamodbav:"address_line1"`
	Line2      string `dynamodbav:"address_line2"`
	City       string `dynamodbav:"address_city"`
	State      string `dynamodbav:"address_state"`
	PostalCode string `dynamodbav:"address_postal_code"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerRecord(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var rec customerRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRecord(rec), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	var customers []entities.Customer
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
			var rec customerRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			customers = append(customers, fromCustomerRecord(rec))
		}
		if out.LastEvaluatedKey == nil {
			return customers, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *CustomerDynamoRepository) Save(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerRecord(c))
	if err != nil {
		return entities.Customer{}, err
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
			return entities.Customer{}, interfaces.ErrRecordNotFound
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCustomerRecord(c entities.Customer) customerRecord {
	return customerRecord{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Phone:      c.Phone,
		Email:      c.Email,
		Line1:      c.Address.Line1,
		Line2:      c.Address.Line2,
		City:       c.Address.City,
		State:      c.Address.State,
		PostalCode: c.Address.PostalCode,
		CreatedAt:  formatTime(c.CreatedAt),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func fromCustomerRecord(rec customerRecord) entities.Customer {
	return entities.Customer{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Phone:     rec.Phone,
		Email:     rec.Email,
		Address: entities.Address{
			Line1:      rec.Line1,
			Line2:      rec.Line2,
			City:       rec.City,
			State:      rec.State,
			PostalCode: rec.PostalCode,
		},
		CreatedAt: parseTime(rec.CreatedAt),
		UpdatedAt: parseTime(rec.UpdatedAt),
	}
}
