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
	defaultWorkOrdersTableName   = "work_orders"
	workOrdersCompanyStatusIndex = "company_id-status-index"
)

type workOrderItem struct {
	ID                string `dynamodbav:"id"`
	CompanyID         string `dynamodbav:"company_id"`
	ClientID          string `dynamodbav:"client_id"`
	EquipmentID       string `dynamodbav:"equipment_id"`
	TechnicianID      string `dynamodbav:"technician_id"`
	Status            string `dynamodbav:"status"`
	ReportedDefect    string `dynamodbav:"reported_defect"`
	InternalNotes     string `dynamodbav:"internal_notes,omitempty"`
	IsReturnOrder     bool   `dynamodbav:"is_return_order"`
	OriginWorkOrderID string `dynamodbav:"origin_work_order_id,omitempty"`
	DeliveredAt       string `dynamodbav:"delivered_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
	DeletedAt         string `dynamodbav:"deleted_at,omitempty"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-status-index (PK: company_id, SK: status)
//
// Status writes and their audit rows go through TransactWriteItems so a
// reader never observes a status without its history entry.

type WorkOrderDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	historyTableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
		historyTableName: getenvDefault("WORK_ORDER_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder, hist entities.WorkOrderHistory) (entities.WorkOrder, error) {
	woAV, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	histAV, err := attributevalue.MarshalMap(toWorkOrderHistoryItem(hist))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                woAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.historyTableName),
					Item:      histAV,
				},
			},
		},
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListByCompanyAndStatus(ctx context.Context, companyID string, status entities.WorkOrderStatus) ([]entities.WorkOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrdersCompanyStatusIndex),
		KeyConditionExpression: aws.String("company_id = :cid AND #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":    &types.AttributeValueMemberS{Value: companyID},
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkOrderItem(it))
	}
	return items, nil
}

// SaveStatusWithHistory overwrites the work order (which must already exist)
// and, when hist is non-nil, appends the audit row in the same transaction.
func (r *WorkOrderDynamoRepository) SaveStatusWithHistory(ctx context.Context, wo entities.WorkOrder, hist *entities.WorkOrderHistory) (entities.WorkOrder, error) {
	woAV, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	transactItems := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                woAV,
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}
	if hist != nil {
		histAV, err := attributevalue.MarshalMap(toWorkOrderHistoryItem(*hist))
		if err != nil {
			return entities.WorkOrder{}, err
		}
		transactItems = append(transactItems, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.historyTableName),
				Item:      histAV,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: transactItems})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:                wo.ID,
		CompanyID:         wo.CompanyID,
		ClientID:          wo.ClientID,
		EquipmentID:       wo.EquipmentID,
		TechnicianID:      wo.TechnicianID,
		Status:            string(wo.Status),
		ReportedDefect:    wo.ReportedDefect,
		InternalNotes:     wo.InternalNotes,
		IsReturnOrder:     wo.IsReturnOrder,
		OriginWorkOrderID: wo.OriginWorkOrderID,
		DeliveredAt:       formatOptionalTime(wo.DeliveredAt),
		CreatedAt:         wo.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         wo.UpdatedAt.UTC().Format(time.RFC3339Nano),
		DeletedAt:         formatOptionalTime(wo.DeletedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.WorkOrder{
		ID:                it.ID,
		CompanyID:         it.CompanyID,
		ClientID:          it.ClientID,
		EquipmentID:       it.EquipmentID,
		TechnicianID:      it.TechnicianID,
		Status:            entities.WorkOrderStatus(it.Status),
		ReportedDefect:    it.ReportedDefect,
		InternalNotes:     it.InternalNotes,
		IsReturnOrder:     it.IsReturnOrder,
		OriginWorkOrderID: it.OriginWorkOrderID,
		DeliveredAt:       parseOptionalTime(it.DeliveredAt),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
		DeletedAt:         parseOptionalTime(it.DeletedAt),
	}
}
