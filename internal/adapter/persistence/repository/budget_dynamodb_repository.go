package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"
	budgetsWorkOrderIDIndex = "work_order_id-index"
)

type budgetItem struct {
	ID              string `dynamodbav:"id"`
	CompanyID       string `dynamodbav:"company_id"`
	WorkOrderID     string `dynamodbav:"work_order_id"`
	ServiceValue    string `dynamodbav:"service_value"`
	PartsValue      string `dynamodbav:"parts_value"`
	TotalValue      string `dynamodbav:"total_value"`
	Status          string `dynamodbav:"status"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
	ApprovalMethod  string `dynamodbav:"approval_method,omitempty"`
	ApprovedBy      string `dynamodbav:"approved_by,omitempty"`
	ApprovedAt      string `dynamodbav:"approved_at,omitempty"`
	CreatedBy       string `dynamodbav:"created_by"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
//
// ApplyApprovalSwap writes the promotion and all demotions in one
// TransactWriteItems call: there is no window in which two budgets of the
// same work order are both aprovado.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Budget, error) {
	return r.queryByWorkOrderID(ctx, workOrderID, "")
}

func (r *BudgetDynamoRepository) ListByWorkOrderIDAndStatus(ctx context.Context, workOrderID string, status entities.BudgetStatus) ([]entities.Budget, error) {
	return r.queryByWorkOrderID(ctx, workOrderID, status)
}

func (r *BudgetDynamoRepository) queryByWorkOrderID(ctx context.Context, workOrderID string, status entities.BudgetStatus) ([]entities.Budget, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Budget, 0, len(out.Items))
	for _, raw := range out.Items {
		var it budgetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBudgetItem(it))
	}
	return items, nil
}

func (r *BudgetDynamoRepository) Save(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
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
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) ApplyApprovalSwap(ctx context.Context, promoted entities.Budget, demoted []entities.Budget) (entities.Budget, error) {
	transactItems := make([]types.TransactWriteItem, 0, len(demoted)+1)

	budgets := append([]entities.Budget{promoted}, demoted...)
	for _, b := range budgets {
		av, err := attributevalue.MarshalMap(toBudgetItem(b))
		if err != nil {
			return entities.Budget{}, err
		}
		transactItems = append(transactItems, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: transactItems})
	if err != nil {
		return entities.Budget{}, err
	}
	return promoted, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:              b.ID,
		CompanyID:       b.CompanyID,
		WorkOrderID:     b.WorkOrderID,
		ServiceValue:    floatToString(b.ServiceValue),
		PartsValue:      floatToString(b.PartsValue),
		TotalValue:      floatToString(b.TotalValue),
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		ApprovalMethod:  string(b.ApprovalMethod),
		ApprovedBy:      b.ApprovedBy,
		ApprovedAt:      formatOptionalTime(b.ApprovedAt),
		CreatedBy:       b.CreatedBy,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	serviceValue, _ := strconv.ParseFloat(it.ServiceValue, 64)
	partsValue, _ := strconv.ParseFloat(it.PartsValue, 64)
	totalValue, _ := strconv.ParseFloat(it.TotalValue, 64)
	return entities.Budget{
		ID:              it.ID,
		CompanyID:       it.CompanyID,
		WorkOrderID:     it.WorkOrderID,
		ServiceValue:    serviceValue,
		PartsValue:      partsValue,
		TotalValue:      totalValue,
		Status:          entities.BudgetStatus(it.Status),
		RejectionReason: it.RejectionReason,
		ApprovalMethod:  entities.ApprovalMethod(it.ApprovalMethod),
		ApprovedBy:      it.ApprovedBy,
		ApprovedAt:      parseOptionalTime(it.ApprovedAt),
		CreatedBy:       it.CreatedBy,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
