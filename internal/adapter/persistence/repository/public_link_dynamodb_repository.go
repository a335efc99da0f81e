package repository

import (
	"context"
	"errors"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPublicLinksTableName = "public_links"

type publicLinkItem struct {
	Token       string `dynamodbav:"token"`
	ID          string `dynamodbav:"id"`
	WorkOrderID string `dynamodbav:"work_order_id"`
	CompanyID   string `dynamodbav:"company_id"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PublicLinkDynamoRepository persists PublicLink entities in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//
// The token is the partition key because it is the only lookup the public
// channel performs. Create puts conditionally on the token, so a concurrent
// duplicate insert comes back as an empty link rather than an error and the
// issuer regenerates.

type PublicLinkDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPublicLinkRepository = (*PublicLinkDynamoRepository)(nil)

func NewPublicLinkDynamoRepository(ddb *dynamodb.Client) *PublicLinkDynamoRepository {
	return &PublicLinkDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PUBLIC_LINKS_TABLE", defaultPublicLinksTableName),
	}
}

func (r *PublicLinkDynamoRepository) Create(ctx context.Context, link entities.PublicLink) (entities.PublicLink, error) {
	av, err := attributevalue.MarshalMap(toPublicLinkItem(link))
	if err != nil {
		return entities.PublicLink{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PublicLink{}, nil
		}
		return entities.PublicLink{}, err
	}
	return link, nil
}

func (r *PublicLinkDynamoRepository) GetByToken(ctx context.Context, token string) (entities.PublicLink, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PublicLink{}, err
	}
	if len(out.Item) == 0 {
		return entities.PublicLink{}, nil
	}

	var it publicLinkItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PublicLink{}, err
	}
	return fromPublicLinkItem(it), nil
}

func (r *PublicLinkDynamoRepository) ExistsByToken(ctx context.Context, token string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ProjectionExpression: aws.String("#token"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func toPublicLinkItem(link entities.PublicLink) publicLinkItem {
	return publicLinkItem{
		Token:       link.Token,
		ID:          link.ID,
		WorkOrderID: link.WorkOrderID,
		CompanyID:   link.CompanyID,
		CreatedAt:   link.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   link.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPublicLinkItem(it publicLinkItem) entities.PublicLink {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PublicLink{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		CompanyID:   it.CompanyID,
		Token:       it.Token,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
