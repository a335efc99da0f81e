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
	defaultClientsTableName    = "clients"
	defaultEquipmentsTableName = "equipments"
)

type clientItem struct {
	ID        string `dynamodbav:"id"`
	CompanyID string `dynamodbav:"company_id"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"created_at"`
}

type equipmentItem struct {
	ID           string `dynamodbav:"id"`
	CompanyID    string `dynamodbav:"company_id"`
	ClientID     string `dynamodbav:"client_id"`
	Description  string `dynamodbav:"description"`
	SerialNumber string `dynamodbav:"serial_number,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ClientDynamoRepository and EquipmentDynamoRepository read registry entities
// for tenancy and ownership validation when opening a work order.
//
// Table requirements (both):
//   - PK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Client{
		ID:        it.ID,
		CompanyID: it.CompanyID,
		Name:      it.Name,
		CreatedAt: createdAt,
	}, nil
}

type EquipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb *dynamodb.Client) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EQUIPMENTS_TABLE", defaultEquipmentsTableName),
	}
}

func (r *EquipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Equipment{}, nil
	}

	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Equipment{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Equipment{
		ID:           it.ID,
		CompanyID:    it.CompanyID,
		ClientID:     it.ClientID,
		Description:  it.Description,
		SerialNumber: it.SerialNumber,
		CreatedAt:    createdAt,
	}, nil
}
