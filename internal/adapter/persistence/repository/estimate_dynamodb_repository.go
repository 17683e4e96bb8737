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

const defaultEstimatesTableName = "estimates"

type lineItemAttr struct {
	ID              string `dynamodbav:"id"`
	PriceBookItemID string `dynamodbav:"price_book_item_id"`
	Name            string `dynamodbav:"name"`
	Type            string `dynamodbav:"type"`
	Unit            string `dynamodbav:"unit"`
	Description     string `dynamodbav:"description"`
	Qty             string `dynamodbav:"qty"`
	UnitPrice       string `dynamodbav:"unit_price"`
	Taxable         bool   `dynamodbav:"taxable"`
}

type estimateItem struct {
	ID         string         `dynamodbav:"id"`
	JobID      string         `dynamodbav:"job_id"`
	CustomerID string         `dynamodbav:"customer_id"`
	Title      string         `dynamodbav:"title"`
	Status     string         `dynamodbav:"status"`
	TaxRate    string         `dynamodbav:"tax_rate"`
	Items      []lineItemAttr `dynamodbav:"items"`
	Subtotal   string         `dynamodbav:"subtotal"`
	Tax        string         `dynamodbav:"tax"`
	Total      string         `dynamodbav:"total"`
	CreatedAt  string         `dynamodbav:"created_at"`
	UpdatedAt  string         `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Lines live inline on the document so a Save writes the whole estimate plus
// its recomputed totals in one PutItem.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.Estimate, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
			return entities.Estimate{}, interfaces.ErrRecordNotFound
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	lines := make([]lineItemAttr, 0, len(e.Items))
	for _, li := range e.Items {
		lines = append(lines, lineItemAttr{
			ID:              li.ID,
			PriceBookItemID: li.PriceBookItemID,
			Name:            li.Name,
			Type:            string(li.Type),
			Unit:            string(li.Unit),
			Description:     li.Description,
			Qty:             li.Qty.String(),
			UnitPrice:       li.UnitPrice.String(),
			Taxable:         li.Taxable,
		})
	}
	return estimateItem{
		ID:         e.ID,
		JobID:      e.JobID,
		CustomerID: e.CustomerID,
		Title:      e.Title,
		Status:     string(e.Status),
		TaxRate:    e.TaxRate.String(),
		Items:      lines,
		Subtotal:   e.Totals.Subtotal.String(),
		Tax:        e.Totals.Tax.String(),
		Total:      e.Totals.Total.String(),
		CreatedAt:  formatTime(e.CreatedAt),
		UpdatedAt:  formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	lines := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		lines = append(lines, entities.LineItem{
			ID:              li.ID,
			PriceBookItemID: li.PriceBookItemID,
			Name:            li.Name,
			Type:            entities.PriceBookItemType(li.Type),
			Unit:            entities.PriceBookUnit(li.Unit),
			Description:     li.Description,
			Qty:             parseDecimal(li.Qty),
			UnitPrice:       parseDecimal(li.UnitPrice),
			Taxable:         li.Taxable,
		})
	}
	return entities.Estimate{
		ID:         it.ID,
		JobID:      it.JobID,
		CustomerID: it.CustomerID,
		Title:      it.Title,
		Status:     entities.EstimateStatus(it.Status),
		TaxRate:    parseDecimal(it.TaxRate),
		Items:      lines,
		Totals: entities.EstimateTotals{
			Subtotal: parseDecimal(it.Subtotal),
			Tax:      parseDecimal(it.Tax),
			Total:    parseDecimal(it.Total),
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
