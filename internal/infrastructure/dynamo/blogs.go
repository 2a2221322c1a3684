package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-social-api/internal/domain"
)

// BlogRepo provides typed DynamoDB operations for the blogs table.
type BlogRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewBlogRepo(client *dynamodb.Client, tableName string) *BlogRepo {
	return &BlogRepo{client: client, tableName: tableName}
}

func (r *BlogRepo) Put(ctx context.Context, b *domain.Blog) error {
	item, err := attributevalue.MarshalMap(b)
	if err != nil {
		return fmt.Errorf("marshal blog: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *BlogRepo) Get(ctx context.Context, blogID string) (*domain.Blog, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(fieldBlogID, blogID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("blog not found: %w", domain.ErrNotFound)
	}
	var b domain.Blog
	if err := attributevalue.UnmarshalMap(out.Item, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepo) Delete(ctx context.Context, blogID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(fieldBlogID, blogID),
	})
	return err
}

// IncrementViews atomically adds one to the blog's view counter.
func (r *BlogRepo) IncrementViews(ctx context.Context, blogID string) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey(fieldBlogID, blogID),
		UpdateExpression:    aws.String("ADD #vc :one SET #ua = :now"),
		ConditionExpression: aws.String("attribute_exists(" + fieldBlogID + ")"),
		ExpressionAttributeNames: map[string]string{
			"#vc": fieldViewCount,
			"#ua": fieldUpdatedAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
	})
	if isConditionalFailure(err) {
		return fmt.Errorf("blog not found: %w", domain.ErrNotFound)
	}
	return err
}

// ListPublishedByUser returns up to limit published blogs of userID, newest first.
// cursor is the opaque value returned by a previous call; an empty next cursor means
// there are no more pages.
func (r *BlogRepo) ListPublishedByUser(ctx context.Context, userID string, limit int32, cursor string) ([]domain.Blog, string, error) {
	startKey, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}
	var blogs []domain.Blog
	// The published filter runs after Limit is applied, so keep reading until the page
	// is full or the index is exhausted.
	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(indexUserCreated),
			KeyConditionExpression: aws.String("#u = :uid"),
			FilterExpression:       aws.String("#p = :t"),
			ExpressionAttributeNames: map[string]string{
				"#u": fieldUserID,
				"#p": fieldIsPublished,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid": &types.AttributeValueMemberS{Value: userID},
				":t":   &types.AttributeValueMemberBOOL{Value: true},
			},
			ScanIndexForward:  aws.Bool(false),
			Limit:             aws.Int32(limit - int32(len(blogs))),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, "", err
		}
		var page []domain.Blog
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, "", err
		}
		blogs = append(blogs, page...)
		startKey = out.LastEvaluatedKey
		if len(startKey) == 0 || int32(len(blogs)) >= limit {
			break
		}
	}
	next, err := encodeCursor(startKey)
	if err != nil {
		return nil, "", err
	}
	return blogs, next, nil
}
