package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"taskboard/domain/apperrors"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/pkg/config"
)

type TaskRepositoryImpl struct {
	client  *dynamodb.Client
	table   string
	index   string
	timeout time.Duration
}

func NewTaskRepository(client *dynamodb.Client, cfg *config.DynamoConfig) repositories.TaskRepository {
	return &TaskRepositoryImpl{
		client:  client,
		table:   cfg.Table,
		index:   cfg.OwnerIndexName,
		timeout: cfg.RequestTimeout,
	}
}

func (r *TaskRepositoryImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func taskKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       taskKey(id),
	})
	if err != nil {
		return nil, classifyStoreError(ctx, "get task", err)
	}
	if out.Item == nil {
		return nil, apperrors.ErrTaskNotFound
	}

	var task models.Task
	if err := attributevalue.UnmarshalMap(out.Item, &task); err != nil {
		return nil, fmt.Errorf("unmarshal task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) PutIfAbsent(ctx context.Context, task *models.Task) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	item, err := attributevalue.MarshalMap(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return apperrors.ErrTaskExists
		}
		return classifyStoreError(ctx, "put task", err)
	}
	return nil
}

// buildUpdateExpression turns the mutation list into a conditional update
// expression. The expression builder aliases attribute names, which keeps
// reserved words like "status" out of the raw expression.
func buildUpdateExpression(mutations []repositories.Mutation) (expression.Expression, error) {
	var update expression.UpdateBuilder
	for _, m := range mutations {
		update = update.Set(expression.Name(m.Field), expression.Value(m.Value))
	}

	return expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
}

func (r *TaskRepositoryImpl) UpdateIfExists(ctx context.Context, id string, mutations []repositories.Mutation) (*models.Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	expr, err := buildUpdateExpression(mutations)
	if err != nil {
		return nil, fmt.Errorf("build update expression: %w", err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       taskKey(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			// Deleted between the caller's authorizing fetch and this call.
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, classifyStoreError(ctx, "update task", err)
	}

	var task models.Task
	if err := attributevalue.UnmarshalMap(out.Attributes, &task); err != nil {
		return nil, fmt.Errorf("unmarshal task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) DeleteIfExists(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.table),
		Key:                 taskKey(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return apperrors.ErrTaskNotFound
		}
		return classifyStoreError(ctx, "delete task", err)
	}
	return nil
}

func (r *TaskRepositoryImpl) QueryByOwner(ctx context.Context, ownerID, status string, limit int32, cursor string) (*repositories.Page, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	builder := expression.NewBuilder().
		WithKeyCondition(expression.Key("ownerId").Equal(expression.Value(ownerID)))
	if status != "" {
		builder = builder.WithFilter(expression.Name("status").Equal(expression.Value(status)))
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(r.index),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(limit),
	}

	startKey, err := decodeStartKey(cursor)
	if err != nil {
		return nil, err
	}
	if startKey != nil {
		input.ExclusiveStartKey = startKey
	}

	out, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, classifyStoreError(ctx, "query tasks", err)
	}

	return pageFromItems(out.Items, out.LastEvaluatedKey)
}

func (r *TaskRepositoryImpl) ScanAll(ctx context.Context, ownerID, status string, limit int32, cursor string) (*repositories.Page, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.table),
		Limit:     aws.Int32(limit),
	}

	// Owner and status filters apply conjunctively when both are present.
	var cond expression.ConditionBuilder
	hasFilter := false
	if ownerID != "" {
		cond = expression.Name("ownerId").Equal(expression.Value(ownerID))
		hasFilter = true
	}
	if status != "" {
		statusCond := expression.Name("status").Equal(expression.Value(status))
		if hasFilter {
			cond = cond.And(statusCond)
		} else {
			cond = statusCond
			hasFilter = true
		}
	}
	if hasFilter {
		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return nil, fmt.Errorf("build scan expression: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	startKey, err := decodeStartKey(cursor)
	if err != nil {
		return nil, err
	}
	if startKey != nil {
		input.ExclusiveStartKey = startKey
	}

	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, classifyStoreError(ctx, "scan tasks", err)
	}

	return pageFromItems(out.Items, out.LastEvaluatedKey)
}

func pageFromItems(items []map[string]types.AttributeValue, lastKey map[string]types.AttributeValue) (*repositories.Page, error) {
	tasks := make([]*models.Task, 0, len(items))
	for _, item := range items {
		var task models.Task
		if err := attributevalue.UnmarshalMap(item, &task); err != nil {
			return nil, fmt.Errorf("unmarshal task: %w", err)
		}
		tasks = append(tasks, &task)
	}

	next, err := encodeStartKey(lastKey)
	if err != nil {
		return nil, err
	}

	return &repositories.Page{Tasks: tasks, NextCursor: next}, nil
}
