package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/havncube/billing-service/internal/domain/entities"
	"github.com/havncube/billing-service/internal/usecase/interfaces"
)

const (
	defaultEstimatesTableName = "estimates"
	defaultCountersTableName  = "counters"

	estimateNumberCounter = "estimate_number"
	estimateNumberFormat  = "HCE-%04d"
)

type lineItemItem struct {
	ID           string `dynamodbav:"id"`
	Particulars  string `dynamodbav:"particulars"`
	LengthFeet   int    `dynamodbav:"length_feet"`
	LengthInches int    `dynamodbav:"length_inches"`
	WidthFeet    int    `dynamodbav:"width_feet"`
	WidthInches  int    `dynamodbav:"width_inches"`
	Quantity     string `dynamodbav:"quantity"`
	Unit         string `dynamodbav:"unit"`
	Rate         string `dynamodbav:"rate"`
	Amount       string `dynamodbav:"amount"`
}

type estimateItem struct {
	ID             string         `dynamodbav:"id"`
	ClientName     string         `dynamodbav:"client_name"`
	ClientAddress  string         `dynamodbav:"client_address"`
	ClientPhone    string         `dynamodbav:"client_phone"`
	EstimateNumber string         `dynamodbav:"estimate_number"`
	Date           string         `dynamodbav:"date"`
	LineItems      []lineItemItem `dynamodbav:"line_items"`
	TaxRate        string         `dynamodbav:"tax_rate"`
	Subtotal       string         `dynamodbav:"subtotal"`
	TaxAmount      string         `dynamodbav:"tax_amount"`
	TotalAmount    string         `dynamodbav:"total_amount"`
	CreatedAt      string         `dynamodbav:"created_at"`
	UpdatedAt      string         `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - estimates table, PK: id (string)
//   - counters table, PK: name (string), used for the estimate-number sequence
//
// Estimate numbers come from an atomic increment-and-fetch on the counters
// table, so concurrent creates can never mint the same number.

type EstimateDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
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

// List returns every estimate, newest first. DynamoDB cannot sort a Scan, so
// ordering happens in memory; the data set is a single business's quotes.
func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	estimates := []entities.Estimate{}

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			estimates = append(estimates, fromEstimateItem(it))
		}
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].CreatedAt.After(estimates[j].CreatedAt)
	})
	return estimates, nil
}

// Update replaces the full document. Returns a zero-value Estimate when the
// id no longer exists.
func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
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
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// NextEstimateNumber advances the store-owned sequence and formats it as the
// human-facing estimate number.
func (r *EstimateDynamoRepository) NextEstimateNumber(ctx context.Context) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: estimateNumberCounter},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "current_value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return "", err
	}

	attr, ok := out.Attributes["current_value"].(*types.AttributeValueMemberN)
	if !ok {
		return "", errors.New("counter attribute missing from update response")
	}
	seq, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(estimateNumberFormat, seq), nil
}

func (r *EstimateDynamoRepository) Ping(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	return err
}

func toEstimateItem(e entities.Estimate) estimateItem {
	items := make([]lineItemItem, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		items = append(items, lineItemItem{
			ID:           li.ID,
			Particulars:  li.Particulars,
			LengthFeet:   li.LengthFeet,
			LengthInches: li.LengthInches,
			WidthFeet:    li.WidthFeet,
			WidthInches:  li.WidthInches,
			Quantity:     floatToString(li.Quantity),
			Unit:         string(li.Unit),
			Rate:         floatToString(li.Rate),
			Amount:       floatToString(li.Amount),
		})
	}
	return estimateItem{
		ID:             e.ID,
		ClientName:     e.ClientName,
		ClientAddress:  e.ClientAddress,
		ClientPhone:    e.ClientPhone,
		EstimateNumber: e.EstimateNumber,
		Date:           e.Date,
		LineItems:      items,
		TaxRate:        floatToString(e.TaxRate),
		Subtotal:       floatToString(e.Subtotal),
		TaxAmount:      floatToString(e.TaxAmount),
		TotalAmount:    floatToString(e.TotalAmount),
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		quantity, _ := strconv.ParseFloat(li.Quantity, 64)
		rate, _ := strconv.ParseFloat(li.Rate, 64)
		amount, _ := strconv.ParseFloat(li.Amount, 64)
		items = append(items, entities.LineItem{
			ID:           li.ID,
			Particulars:  li.Particulars,
			LengthFeet:   li.LengthFeet,
			LengthInches: li.LengthInches,
			WidthFeet:    li.WidthFeet,
			WidthInches:  li.WidthInches,
			Quantity:     quantity,
			Unit:         entities.Unit(li.Unit),
			Rate:         rate,
			Amount:       amount,
		})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	taxRate, _ := strconv.ParseFloat(it.TaxRate, 64)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	taxAmount, _ := strconv.ParseFloat(it.TaxAmount, 64)
	totalAmount, _ := strconv.ParseFloat(it.TotalAmount, 64)
	return entities.Estimate{
		ID:             it.ID,
		ClientName:     it.ClientName,
		ClientAddress:  it.ClientAddress,
		ClientPhone:    it.ClientPhone,
		EstimateNumber: it.EstimateNumber,
		Date:           it.Date,
		LineItems:      items,
		TaxRate:        taxRate,
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		TotalAmount:    totalAmount,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
