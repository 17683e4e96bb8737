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

const defaultPriceBookTableName = "price_book_items"

type priceBookItemRecord struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	Name        string `dynamodbav:"name"`
	Category    string `dynamodbav:"category"`
	Description string `dynamodbav:"description"`
	Unit        string `dynamodbav:"unit"`
	Price       string `dynamodbav:"price"`
	Cost        string `dynamodbav:"cost"`
	Taxable     bool   `dynamodbav:"taxable"`
	SKU         string `dynamodbav:"sku"`
	IsActive    bool   `dynamodbav:"is_active"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PriceBookDynamoRepository persists PriceBookItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type PriceBookDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceBookRepository = (*PriceBookDynamoRepository)(nil)

func NewPriceBookDynamoRepository(ddb *dynamodb.Client) *PriceBookDynamoRepository {
	return &PriceBookDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICE_BOOK_TABLE", defaultPriceBookTableName),
	}
}

func (r *PriceBookDynamoRepository) Create(ctx context.Context, item entities.PriceBookItem) (entities.PriceBookItem, error) {
	av, err := attributevalue.MarshalMap(toPriceBookRecord(item))
	if err != nil {
		return entities.PriceBookItem{}, err
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
		return entities.PriceBookItem{}, err
	}
	return item, nil
}

func (r *PriceBookDynamoRepository) GetByID(ctx context.Context, id string) (entities.PriceBookItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceBookItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.PriceBookItem{}, nil
	}

	var rec priceBookItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.PriceBookItem{}, err
	}
	return fromPriceBookRecord(rec), nil
}

// List scans the whole table. The catalog is a few hundred rows at most;
// filtering happens in the use case.
func (r *PriceBookDynamoRepository) List(ctx context.Context) ([]entities.PriceBookItem, error) {
	var items []entities.PriceBookItem
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
			var rec priceBookItemRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			items = append(items, fromPriceBookRecord(rec))
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *PriceBookDynamoRepository) Save(ctx context.Context, item entities.PriceBookItem) (entities.PriceBookItem, error) {
	av, err := attributevalue.MarshalMap(toPriceBookRecord(item))
	if err != nil {
		return entities.PriceBookItem{}, err
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
			return entities.PriceBookItem{}, interfaces.ErrRecordNotFound
		}
		return entities.PriceBookItem{}, err
	}
	return item, nil
}

func toPriceBookRecord(item entities.PriceBookItem) priceBookItemRecord {
	return priceBookItemRecord{
		ID:          item.ID,
		Type:        string(item.Type),
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Unit:        string(item.Unit),
		Price:       item.Price.String(),
		Cost:        item.Cost.String(),
		Taxable:     item.Taxable,
		SKU:         item.SKU,
		IsActive:    item.IsActive,
		CreatedAt:   formatTime(item.CreatedAt),
		UpdatedAt:   formatTime(item.UpdatedAt),
	}
}

func fromPriceBookRecord(rec priceBookItemRecord) entities.PriceBookItem {
	return entities.PriceBookItem{
		ID:          rec.ID,
		Type:        entities.PriceBookItemType(rec.Type),
		Name:        rec.Name,
		Category:    rec.Category,
		Description: rec.Description,
		Unit:        entities.PriceBookUnit(rec.Unit),
		Price:       parseDecimal(rec.Price),
		Cost:        parseDecimal(rec.Cost),
		Taxable:     rec.Taxable,
		SKU:         rec.SKU,
		IsActive:    rec.IsActive,
		CreatedAt:   parseTime(rec.CreatedAt),
		UpdatedAt:   parseTime(rec.UpdatedAt),
	}
}
