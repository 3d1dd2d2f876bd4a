package docstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

const (
	attrCollection = "col"
	attrID         = "id"
)

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(context.Context, *dynamodb.UpdateItemInput, ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(context.Context, *dynamodb.DeleteItemInput, ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(context.Context, *dynamodb.QueryInput, ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(context.Context, *dynamodb.TransactWriteItemsInput, ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// DynamoStore persists documents to a single DynamoDB table keyed by
// collection (partition) and document id (sort).
type DynamoStore struct {
	client    dynamoAPI
	tableName string
	logger    *logging.Logger
	hub       *snapshotHub

	now func() time.Time
}

var _ Store = (*DynamoStore)(nil)

// NewDynamoStore builds a store backed by the provided DynamoDB client.
func NewDynamoStore(client dynamoAPI, tableName string, logger *logging.Logger) *DynamoStore {
	if client == nil {
		panic("docstore: dynamodb client cannot be nil")
	}
	if tableName == "" {
		panic("docstore: table name cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DynamoStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
		hub:       newSnapshotHub(),
		now:       time.Now,
	}
}

// List returns every document in a collection.
func (s *DynamoStore) List(ctx context.Context, col Collection) ([]Document, error) {
	var docs []Document
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			KeyConditionExpression: aws.String("#c = :c"),
			ExpressionAttributeNames: map[string]string{
				"#c": attrCollection,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":c": &types.AttributeValueMemberS{Value: string(col)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("docstore: list %s: %w", col, err)
		}

		for _, item := range out.Items {
			doc, err := itemToDocument(item)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return docs, nil
}

// CreateOrReplace upserts a whole document by id.
func (s *DynamoStore) CreateOrReplace(ctx context.Context, col Collection, id string, fields map[string]any) error {
	item, err := documentToItem(col, id, fields)
	if err != nil {
		return err
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("docstore: put %s/%s: %w", col, id, err)
	}

	s.republish(ctx, col)
	return nil
}

// Patch updates only the given fields of an existing document.
func (s *DynamoStore) Patch(ctx context.Context, col Collection, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	sets := make([]string, 0, len(fields))
	i := 0
	for k, v := range fields {
		attr, err := attributevalue.Marshal(v)
		if err != nil {
			return fmt.Errorf("docstore: patch %s/%s: marshal %s: %w", col, id, k, err)
		}
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		names[nameKey] = k
		values[valueKey] = attr
		sets = append(sets, nameKey+" = "+valueKey)
		i++
	}

	_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			attrCollection: &types.AttributeValueMemberS{Value: string(col)},
			attrID:         &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(id)"),
	})
	if err != nil {
		return fmt.Errorf("docstore: patch %s/%s: %w", col, id, err)
	}

	s.republish(ctx, col)
	return nil
}

// Delete removes a document by id.
func (s *DynamoStore) Delete(ctx context.Context, col Collection, id string) error {
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			attrCollection: &types.AttributeValueMemberS{Value: string(col)},
			attrID:         &types.AttributeValueMemberS{Value: id},
		},
	}); err != nil {
		return fmt.Errorf("docstore: delete %s/%s: %w", col, id, err)
	}

	s.republish(ctx, col)
	return nil
}

// CreateWithGeneratedID inserts a document under a fresh id with a createdAt
// stamp.
func (s *DynamoStore) CreateWithGeneratedID(ctx context.Context, col Collection, fields map[string]any) (string, error) {
	id := uuid.NewString()

	stamped := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		stamped[k] = v
	}
	stamped["createdAt"] = s.now().Unix()

	item, err := documentToItem(col, id, stamped)
	if err != nil {
		return "", err
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}); err != nil {
		return "", fmt.Errorf("docstore: create in %s: %w", col, err)
	}

	s.republish(ctx, col)
	return id, nil
}

// BatchWrite applies every operation as a single transaction.
func (s *DynamoStore) BatchWrite(ctx context.Context, ops []WriteOp) error {
	if len(ops) == 0 {
		return nil
	}

	items := make([]types.TransactWriteItem, 0, len(ops))
	touched := make(map[Collection]struct{})
	for _, op := range ops {
		item, err := documentToItem(op.Collection, op.ID, op.Fields)
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(s.tableName),
				Item:      item,
			},
		})
		touched[op.Collection] = struct{}{}
	}

	if _, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	}); err != nil {
		return fmt.Errorf("docstore: batch write: %w", err)
	}

	for col := range touched {
		s.republish(ctx, col)
	}
	return nil
}

// Subscribe opens a snapshot stream; the current snapshot arrives first.
func (s *DynamoStore) Subscribe(ctx context.Context, col Collection) (*Subscription, error) {
	snapshot, err := s.List(ctx, col)
	if err != nil {
		return nil, err
	}

	sub, ch := s.hub.subscribe(col)
	select {
	case ch <- snapshot:
	default:
	}
	return sub, nil
}

// republish reloads a collection and fans it out to subscribers. A failed
// reload only costs subscribers one emission; the next mutation retries.
func (s *DynamoStore) republish(ctx context.Context, col Collection) {
	if !s.hub.hasSubscribers(col) {
		return
	}
	snapshot, err := s.List(ctx, col)
	if err != nil {
		s.logger.Error("docstore: snapshot reload failed", "collection", col, "error", err)
		return
	}
	s.hub.publish(col, snapshot)
}

func documentToItem(col Collection, id string, fields map[string]any) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(fields)
	if err != nil {
		return nil, fmt.Errorf("docstore: marshal %s/%s: %w", col, id, err)
	}
	item[attrCollection] = &types.AttributeValueMemberS{Value: string(col)}
	item[attrID] = &types.AttributeValueMemberS{Value: id}
	return item, nil
}

func itemToDocument(item map[string]types.AttributeValue) (Document, error) {
	var fields map[string]any
	if err := attributevalue.UnmarshalMap(item, &fields); err != nil {
		return Document{}, fmt.Errorf("docstore: decode item: %w", err)
	}

	id, _ := fields[attrID].(string)
	delete(fields, attrCollection)
	delete(fields, attrID)
	return Document{ID: id, Fields: fields}, nil
}
