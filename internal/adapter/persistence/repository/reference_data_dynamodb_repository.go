package repository

import (
	"context"

	"psaops/internal/domain/entities"
	"psaops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRolesTableName           = "roles"
	defaultEmployeesTableName       = "employees"
	defaultDeliveryCentersTableName = "delivery_centers"
	defaultCurrencyRatesTableName   = "currency_rates"
)

type roleItem struct {
	ID                      string         `dynamodbav:"id"`
	Name                    string         `dynamodbav:"name"`
	Currency                string         `dynamodbav:"currency"`
	DefaultInternalCostRate float64        `dynamodbav:"default_internal_cost_rate"`
	DefaultExternalRate     float64        `dynamodbav:"default_external_rate"`
	Rates                   []roleRateItem `dynamodbav:"rates,omitempty"`
}

type roleRateItem struct {
	DeliveryCenterID string  `dynamodbav:"delivery_center_id"`
	Currency         string  `dynamodbav:"currency"`
	InternalCostRate float64 `dynamodbav:"internal_cost_rate"`
	ExternalRate     float64 `dynamodbav:"external_rate"`
}

type employeeItem struct {
	ID               string  `dynamodbav:"id"`
	Name             string  `dynamodbav:"name"`
	DeliveryCenterID string  `dynamodbav:"delivery_center_id"`
	Currency         string  `dynamodbav:"currency"`
	InternalCostRate float64 `dynamodbav:"internal_cost_rate"`
	InternalBillRate float64 `dynamodbav:"internal_bill_rate"`
}

type deliveryCenterItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

type currencyRateItem struct {
	Currency string  `dynamodbav:"currency"`
	USDRate  float64 `dynamodbav:"usd_rate"`
}

// ReferenceDataDynamoRepository reads pricing reference data from DynamoDB.
//
// Table requirements:
//   - roles: PK id (string), role rates embedded as a list attribute
//   - employees: PK id (string)
//   - delivery_centers: PK id (string)
//   - currency_rates: PK currency (string)
//
// All reads are eventually consistent; this data changes rarely and the
// engines memoize their own lookups.

type ReferenceDataDynamoRepository struct {
	ddb                  *dynamodb.Client
	rolesTable           string
	employeesTable       string
	deliveryCentersTable string
	currencyRatesTable   string
}

var _ interfaces.IReferenceDataRepository = (*ReferenceDataDynamoRepository)(nil)

func NewReferenceDataDynamoRepository(ddb *dynamodb.Client) *ReferenceDataDynamoRepository {
	return &ReferenceDataDynamoRepository{
		ddb:                  ddb,
		rolesTable:           getenvDefault("ROLES_TABLE", defaultRolesTableName),
		employeesTable:       getenvDefault("EMPLOYEES_TABLE", defaultEmployeesTableName),
		deliveryCentersTable: getenvDefault("DELIVERY_CENTERS_TABLE", defaultDeliveryCentersTableName),
		currencyRatesTable:   getenvDefault("CURRENCY_RATES_TABLE", defaultCurrencyRatesTableName),
	}
}

func (r *ReferenceDataDynamoRepository) GetRole(ctx context.Context, id string) (entities.Role, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.rolesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Role{}, err
	}
	if len(out.Item) == 0 {
		return entities.Role{}, nil
	}

	var it roleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Role{}, err
	}
	return fromRoleItem(it), nil
}

func (r *ReferenceDataDynamoRepository) GetEmployee(ctx context.Context, id string) (entities.Employee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.employeesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Employee{}, err
	}
	if len(out.Item) == 0 {
		return entities.Employee{}, nil
	}

	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Employee{}, err
	}
	return entities.Employee(it), nil
}

func (r *ReferenceDataDynamoRepository) ListDeliveryCenters(ctx context.Context) ([]entities.DeliveryCenter, error) {
	var centers []entities.DeliveryCenter
	err := r.scan(ctx, r.deliveryCentersTable, func(raw map[string]types.AttributeValue) error {
		var it deliveryCenterItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		centers = append(centers, entities.DeliveryCenter(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *ReferenceDataDynamoRepository) ListCurrencyRates(ctx context.Context) ([]entities.CurrencyRate, error) {
	var rates []entities.CurrencyRate
	err := r.scan(ctx, r.currencyRatesTable, func(raw map[string]types.AttributeValue) error {
		var it currencyRateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		rates = append(rates, entities.CurrencyRate(it))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *ReferenceDataDynamoRepository) scan(ctx context.Context, tableName string, visit func(map[string]types.AttributeValue) error) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return err
		}
		for _, raw := range out.Items {
			if err := visit(raw); err != nil {
				return err
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func fromRoleItem(it roleItem) entities.Role {
	role := entities.Role{
		ID:                      it.ID,
		Name:                    it.Name,
		Currency:                it.Currency,
		DefaultInternalCostRate: it.DefaultInternalCostRate,
		DefaultExternalRate:     it.DefaultExternalRate,
	}
	for _, rr := range it.Rates {
		role.Rates = append(role.Rates, entities.RoleRate{
			RoleID:           it.ID,
			DeliveryCenterID: rr.DeliveryCenterID,
			Currency:         rr.Currency,
			InternalCostRate: rr.InternalCostRate,
			ExternalRate:     rr.ExternalRate,
		})
	}
	return role
}
