package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"firex_service/internal/domain/entities"
	"firex_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceRequestsTableName = "service_requests"

	businessIDIndex     = "business_id-index"
	requesterEmailIndex = "requester_email-index"
	statusIndex         = "status-index"
)

type timelineEntryItem struct {
	Timestamp string `dynamodbav:"timestamp"`
	Status    string `dynamodbav:"status"`
	Actor     string `dynamodbav:"actor"`
}

type serviceRequestItem struct {
	ID                    string              `dynamodbav:"id"`
	BusinessID            string              `dynamodbav:"business_id"`
	RequesterID           string              `dynamodbav:"requester_id"`
	RequesterEmail        string              `dynamodbav:"requester_email"`
	ExtinguisherType      string              `dynamodbav:"extinguisher_type"`
	ExtinguisherCondition string              `dynamodbav:"extinguisher_condition"`
	ScheduledDate         string              `dynamodbav:"scheduled_date"`
	TimeSlot              string              `dynamodbav:"time_slot"`
	Address               string              `dynamodbav:"address"`
	Phone                 string              `dynamodbav:"phone"`
	Notes                 string              `dynamodbav:"notes,omitempty"`
	Status                string              `dynamodbav:"status"`
	Timeline              []timelineEntryItem `dynamodbav:"timeline"`
	Version               string              `dynamodbav:"version"`
	CreatedAt             string              `dynamodbav:"created_at"`
	UpdatedAt             string              `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists ServiceRequest aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI business_id-index: business_id
//   - GSI requester_email-index: requester_email
//   - GSI status-index: status
//
// The whole aggregate (status + timeline) lives in one item, so a status
// change and its audit entry are committed by a single conditional PutItem.
// The hash-only GSIs cannot order results, so the ordering contracts from
// the repository interface are honored by sorting in memory after the query.

type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

// TableName exposes the resolved table name for bootstrap code.
func (r *ServiceRequestDynamoRepository) TableName() string {
	return r.tableName
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
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
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) GetByBusinessID(ctx context.Context, businessID string) (entities.ServiceRequest, error) {
	items, err := r.queryIndex(ctx, businessIDIndex, "business_id", businessID, "")
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(items) == 0 {
		return entities.ServiceRequest{}, nil
	}
	return fromServiceRequestItem(items[0]), nil
}

func (r *ServiceRequestDynamoRepository) ExistsByBusinessID(ctx context.Context, businessID string) (bool, error) {
	sr, err := r.GetByBusinessID(ctx, businessID)
	if err != nil {
		return false, err
	}
	return sr.ID != "", nil
}

// Update replaces the whole aggregate guarded by the version read at load
// time. The conditional failure covers both a stale version and a concurrent
// delete; either way the caller's read-modify-write must be retried.
func (r *ServiceRequestDynamoRepository) Update(ctx context.Context, sr entities.ServiceRequest, expectedVersion int64) (entities.ServiceRequest, error) {
	sr.Version = expectedVersion + 1

	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, interfaces.ErrVersionConflict
		}
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServiceRequestDynamoRepository) ListByRequester(ctx context.Context, email string) ([]entities.ServiceRequest, error) {
	items, err := r.queryIndex(ctx, requesterEmailIndex, "requester_email", email, "")
	if err != nil {
		return nil, err
	}
	requests := fromServiceRequestItems(items)
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (r *ServiceRequestDynamoRepository) ListByRequesterAndStatus(ctx context.Context, email string, status entities.RequestStatus) ([]entities.ServiceRequest, error) {
	items, err := r.queryIndex(ctx, requesterEmailIndex, "requester_email", email, string(status))
	if err != nil {
		return nil, err
	}
	return fromServiceRequestItems(items), nil
}

func (r *ServiceRequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.ServiceRequest, error) {
	items, err := r.queryIndex(ctx, statusIndex, "status", string(status), "")
	if err != nil {
		return nil, err
	}
	requests := fromServiceRequestItems(items)
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests, nil
}

func (r *ServiceRequestDynamoRepository) ListAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	var items []serviceRequestItem
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []serviceRequestItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return fromServiceRequestItems(items), nil
}

func (r *ServiceRequestDynamoRepository) CountByStatus(ctx context.Context, status entities.RequestStatus) (int64, error) {
	var total int64
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(statusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		total += int64(out.Count)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return total, nil
}

// queryIndex runs a paginated hash-key query against one of the lookup GSIs,
// optionally filtering by status.
func (r *ServiceRequestDynamoRepository) queryIndex(ctx context.Context, index, keyAttr, keyValue, statusFilter string) ([]serviceRequestItem, error) {
	names := map[string]string{"#key": keyAttr}
	values := map[string]types.AttributeValue{
		":key": &types.AttributeValueMemberS{Value: keyValue},
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#key = :key"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if statusFilter != "" {
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: statusFilter}
		input.FilterExpression = aws.String("#status = :status")
	}

	var items []serviceRequestItem
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []serviceRequestItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	timeline := make([]timelineEntryItem, 0, len(sr.Timeline))
	for _, e := range sr.Timeline {
		timeline = append(timeline, timelineEntryItem{
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
			Status:    string(e.Status),
			Actor:     e.Actor,
		})
	}
	return serviceRequestItem{
		ID:                    sr.ID,
		BusinessID:            sr.BusinessID,
		RequesterID:           sr.RequesterID,
		RequesterEmail:        sr.RequesterEmail,
		ExtinguisherType:      string(sr.ExtinguisherType),
		ExtinguisherCondition: string(sr.ExtinguisherCondition),
		ScheduledDate:         sr.ScheduledDate,
		TimeSlot:              string(sr.TimeSlot),
		Address:               sr.Address,
		Phone:                 sr.Phone,
		Notes:                 sr.Notes,
		Status:                string(sr.Status),
		Timeline:              timeline,
		Version:               strconv.FormatInt(sr.Version, 10),
		CreatedAt:             sr.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             sr.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	timeline := make([]entities.TimelineEntry, 0, len(it.Timeline))
	for _, e := range it.Timeline {
		ts, _ := time.Parse(time.RFC3339Nano, e.Timestamp)
		timeline = append(timeline, entities.TimelineEntry{
			Timestamp: ts,
			Status:    entities.RequestStatus(e.Status),
			Actor:     e.Actor,
		})
	}
	version, _ := strconv.ParseInt(it.Version, 10, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ServiceRequest{
		ID:                    it.ID,
		BusinessID:            it.BusinessID,
		RequesterID:           it.RequesterID,
		RequesterEmail:        it.RequesterEmail,
		ExtinguisherType:      entities.ExtinguisherType(it.ExtinguisherType),
		ExtinguisherCondition: entities.ExtinguisherCondition(it.ExtinguisherCondition),
		ScheduledDate:         it.ScheduledDate,
		TimeSlot:              entities.TimeSlot(it.TimeSlot),
		Address:               it.Address,
		Phone:                 it.Phone,
		Notes:                 it.Notes,
		Status:                entities.RequestStatus(it.Status),
		Timeline:              timeline,
		Version:               version,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
}

func fromServiceRequestItems(items []serviceRequestItem) []entities.ServiceRequest {
	out := make([]entities.ServiceRequest, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceRequestItem(it))
	}
	return out
}
