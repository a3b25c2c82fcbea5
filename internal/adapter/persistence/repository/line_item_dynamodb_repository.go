package repository

import (
	"context"
	"errors"
	"time"

	"psaops/internal/domain/entities"
	"psaops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultEstimatesTableName = "estimates"
	defaultLineItemsTableName = "line_items"
	lineItemsEstimateIDIndex  = "estimate_id-index"
)

type estimateItem struct {
	ID              string `dynamodbav:"id"`
	OpportunityID   string `dynamodbav:"opportunity_id"`
	Name            string `dynamodbav:"name"`
	InvoiceCenterID string `dynamodbav:"invoice_center_id"`
	Currency        string `dynamodbav:"currency"`
	StartDate       string `dynamodbav:"start_date"`
	EndDate         string `dynamodbav:"end_date"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type lineItemItem struct {
	ID                        string             `dynamodbav:"id"`
	EstimateID                string             `dynamodbav:"estimate_id"`
	RoleID                    string             `dynamodbav:"role_id"`
	EmployeeID                string             `dynamodbav:"employee_id,omitempty"`
	DeliveryCenterID          string             `dynamodbav:"delivery_center_id"`
	Cost                      float64            `dynamodbav:"cost"`
	Rate                      float64            `dynamodbav:"rate"`
	Currency                  string             `dynamodbav:"currency"`
	StartDate                 string             `dynamodbav:"start_date"`
	EndDate                   string             `dynamodbav:"end_date"`
	Billable                  bool               `dynamodbav:"billable"`
	BillableExpensePercentage float64            `dynamodbav:"billable_expense_percentage"`
	DayNotes                  string             `dynamodbav:"day_notes,omitempty"`
	WeekNotes                 string             `dynamodbav:"week_notes,omitempty"`
	HoursPattern              string             `dynamodbav:"hours_pattern,omitempty"`
	CustomHours               map[string]float64 `dynamodbav:"custom_hours,omitempty"`
	CreatedAt                 string             `dynamodbav:"created_at"`
	UpdatedAt                 string             `dynamodbav:"updated_at"`
}

// LineItemDynamoRepository persists estimate line items in DynamoDB.
//
// Table requirements:
//   - line_items: PK id (string), GSI estimate_id-index (PK: estimate_id)
//   - estimates: PK id (string)
//
// The durable id is assigned here on first create and never changes; callers
// key all later updates on it.

type LineItemDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	estimatesTableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:                ddb,
		tableName:          getenvDefault("LINE_ITEMS_TABLE", defaultLineItemsTableName),
		estimatesTableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, estimateID string, item entities.LineItem) (entities.LineItem, error) {
	now := time.Now().UTC()
	item.EstimateID = estimateID
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toLineItemItem(item))
	if err != nil {
		return entities.LineItem{}, err
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
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *LineItemDynamoRepository) Update(ctx context.Context, estimateID, lineItemID string, patch entities.LineItemPatch) (entities.LineItem, error) {
	updateExpr, values, names := buildLineItemUpdate(patch)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: lineItemID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #estimate_id = :estimate_id"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: withEstimateID(values, estimateID),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#estimate_id": "estimate_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LineItem{}, nil
		}
		return entities.LineItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LineItem{}, nil
	}

	var it lineItemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LineItem{}, err
	}
	return fromLineItemItem(it), nil
}

func (r *LineItemDynamoRepository) Delete(ctx context.Context, estimateID, lineItemID string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: lineItemID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #estimate_id = :estimate_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#estimate_id": "estimate_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *LineItemDynamoRepository) GetEstimateDetail(ctx context.Context, estimateID string) (entities.EstimateDetail, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.estimatesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: estimateID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateDetail{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateDetail{}, nil
	}

	var eit estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &eit); err != nil {
		return entities.EstimateDetail{}, err
	}

	items, err := r.listByEstimateID(ctx, estimateID)
	if err != nil {
		return entities.EstimateDetail{}, err
	}
	return entities.EstimateDetail{Estimate: fromEstimateItem(eit), LineItems: items}, nil
}

func (r *LineItemDynamoRepository) SetWeeklyHours(ctx context.Context, estimateID, lineItemID, pattern string, customHours map[string]float64) error {
	hoursAV, err := attributevalue.Marshal(customHours)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: lineItemID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #estimate_id = :estimate_id"),
		UpdateExpression:    aws.String("SET #hours_pattern = :pattern, #custom_hours = :custom_hours, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estimate_id":  &types.AttributeValueMemberS{Value: estimateID},
			":pattern":      &types.AttributeValueMemberS{Value: pattern},
			":custom_hours": hoursAV,
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#estimate_id":   "estimate_id",
			"#hours_pattern": "hours_pattern",
			"#custom_hours":  "custom_hours",
			"#updated_at":    "updated_at",
		},
	})
	if err != nil {
		// A vanished record is not a transport failure; reconciliation picks
		// it up on the next detail fetch.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *LineItemDynamoRepository) listByEstimateID(ctx context.Context, estimateID string) ([]entities.LineItem, error) {
	var items []entities.LineItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(lineItemsEstimateIDIndex),
			KeyConditionExpression: aws.String("#estimate_id = :estimate_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":estimate_id": &types.AttributeValueMemberS{Value: estimateID},
			},
			ExpressionAttributeNames: map[string]string{
				"#estimate_id": "estimate_id",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it lineItemItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromLineItemItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

// buildLineItemUpdate turns the non-nil patch fields into an update
// expression. updated_at always moves.
func buildLineItemUpdate(patch entities.LineItemPatch) (string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	setString := func(attr string, v *string) {
		if v == nil {
			return
		}
		expr += ", #" + attr + " = :" + attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: *v}
		names["#"+attr] = attr
	}
	setNumber := func(attr string, v *float64) {
		if v == nil {
			return
		}
		expr += ", #" + attr + " = :" + attr
		values[":"+attr] = &types.AttributeValueMemberN{Value: floatToString(*v)}
		names["#"+attr] = attr
	}

	setString("role_id", patch.RoleID)
	setString("employee_id", patch.EmployeeID)
	setNumber("cost", patch.Cost)
	setNumber("rate", patch.Rate)
	if patch.StartDate != nil {
		v := patch.StartDate.UTC().Format(time.RFC3339Nano)
		setString("start_date", &v)
	}
	if patch.EndDate != nil {
		v := patch.EndDate.UTC().Format(time.RFC3339Nano)
		setString("end_date", &v)
	}
	if patch.Billable != nil {
		expr += ", #billable = :billable"
		values[":billable"] = &types.AttributeValueMemberBOOL{Value: *patch.Billable}
		names["#billable"] = "billable"
	}
	setNumber("billable_expense_percentage", patch.BillableExpensePercentage)
	setString("day_notes", patch.DayNotes)
	setString("week_notes", patch.WeekNotes)

	return expr, values, names
}

func withEstimateID(values map[string]types.AttributeValue, estimateID string) map[string]types.AttributeValue {
	values[":estimate_id"] = &types.AttributeValueMemberS{Value: estimateID}
	return values
}

func toLineItemItem(e entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:                        e.ID,
		EstimateID:                e.EstimateID,
		RoleID:                    e.RoleID,
		EmployeeID:                e.EmployeeID,
		DeliveryCenterID:          e.DeliveryCenterID,
		Cost:                      e.Cost,
		Rate:                      e.Rate,
		Currency:                  e.Currency,
		StartDate:                 e.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:                   e.EndDate.UTC().Format(time.RFC3339Nano),
		Billable:                  e.Billable,
		BillableExpensePercentage: e.BillableExpensePercentage,
		DayNotes:                  e.DayNotes,
		WeekNotes:                 e.WeekNotes,
		HoursPattern:              "custom",
		CustomHours:               e.CustomHours,
		CreatedAt:                 e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:                 e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.LineItem{
		ID:                        it.ID,
		EstimateID:                it.EstimateID,
		RoleID:                    it.RoleID,
		EmployeeID:                it.EmployeeID,
		DeliveryCenterID:          it.DeliveryCenterID,
		Cost:                      it.Cost,
		Rate:                      it.Rate,
		Currency:                  it.Currency,
		StartDate:                 startDate,
		EndDate:                   endDate,
		Billable:                  it.Billable,
		BillableExpensePercentage: it.BillableExpensePercentage,
		DayNotes:                  it.DayNotes,
		WeekNotes:                 it.WeekNotes,
		CustomHours:               it.CustomHours,
		CreatedAt:                 createdAt,
		UpdatedAt:                 updatedAt,
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Estimate{
		ID:              it.ID,
		OpportunityID:   it.OpportunityID,
		Name:            it.Name,
		InvoiceCenterID: it.InvoiceCenterID,
		Currency:        it.Currency,
		StartDate:       startDate,
		EndDate:         endDate,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
