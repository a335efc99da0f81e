package repository

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHistoryTableName = "work_order_history"
	historyWorkOrderIDIndex = "work_order_id-index"
)

type workOrderHistoryItem struct {
	ID           string `dynamodbav:"id"`
	WorkOrderID  string `dynamodbav:"work_order_id"`
	UserID       string `dynamodbav:"user_id,omitempty"`
	StatusBefore string `dynamodbav:"status_before,omitempty"`
	StatusAfter  string `dynamodbav:"status_after"`
	Observation  string `dynamodbav:"observation,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// WorkOrderHistoryDynamoRepository reads the append-only audit ledger.
// Writes happen through WorkOrderDynamoRepository so the audit row and the
// status change land in the same TransactWriteItems call.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)

type WorkOrderHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderHistoryRepository = (*WorkOrderHistoryDynamoRepository)(nil)

func NewWorkOrderHistoryDynamoRepository(ddb *dynamodb.Client) *WorkOrderHistoryDynamoRepository {
	return &WorkOrderHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDER_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *WorkOrderHistoryDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderHistory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historyWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkOrderHistory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workOrderHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkOrderHistoryItem(it))
	}
	return items, nil
}

func toWorkOrderHistoryItem(h entities.WorkOrderHistory) workOrderHistoryItem {
	return workOrderHistoryItem{
		ID:           h.ID,
		WorkOrderID:  h.WorkOrderID,
		UserID:       h.UserID,
		StatusBefore: string(h.StatusBefore),
		StatusAfter:  string(h.StatusAfter),
		Observation:  h.Observation,
		CreatedAt:    h.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWorkOrderHistoryItem(it workOrderHistoryItem) entities.WorkOrderHistory {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.WorkOrderHistory{
		ID:           it.ID,
		WorkOrderID:  it.WorkOrderID,
		UserID:       it.UserID,
		StatusBefore: entities.WorkOrderStatus(it.StatusBefore),
		StatusAfter:  entities.WorkOrderStatus(it.StatusAfter),
		Observation:  it.Observation,
		CreatedAt:    createdAt,
	}
}
