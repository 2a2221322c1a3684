package dynamo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-social-api/internal/config"
	"github.com/go-social-api/internal/domain"
)

// EdgeRepo stores interaction edges. Each relation kind has its own table keyed by
// (actor_id, target_id), so at most one row exists per pair and kind.
type EdgeRepo struct {
	client *dynamodb.Client
	tables map[domain.RelationKind]string
}

func NewEdgeRepo(client *dynamodb.Client, tables config.DynamoTables) *EdgeRepo {
	return &EdgeRepo{
		client: client,
		tables: map[domain.RelationKind]string{
			domain.RelationFollow:      tables.Follows,
			domain.RelationBlogLike:    tables.BlogLikes,
			domain.RelationBlogDislike: tables.BlogDislikes,
			domain.RelationSavedBlog:   tables.SavedBlogs,
		},
	}
}

func (r *EdgeRepo) table(kind domain.RelationKind) (string, error) {
	t, ok := r.tables[kind]
	if !ok {
		return "", fmt.Errorf("unknown relation kind %q: %w", kind, domain.ErrBadRequest)
	}
	return t, nil
}

// Insert writes the edge unless it already exists. The error is non-nil only when the
// outcome is domain.InsertFailed.
func (r *EdgeRepo) Insert(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (domain.InsertOutcome, error) {
	table, err := r.table(kind)
	if err != nil {
		return domain.InsertFailed, err
	}
	item, err := attributevalue.MarshalMap(domain.Edge{
		ActorID:   actorID,
		TargetID:  targetID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.InsertFailed, fmt.Errorf("marshal edge: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(" + fieldActorID + ")"),
	})
	outcome, err := insertOutcome(err)
	if err != nil {
		return outcome, fmt.Errorf("insert %s edge: %w", kind, err)
	}
	return outcome, nil
}

// insertOutcome classifies the result of a conditional PutItem. A failed condition
// means the row was already there.
func insertOutcome(err error) (domain.InsertOutcome, error) {
	switch {
	case err == nil:
		return domain.Inserted, nil
	case isConditionalFailure(err):
		return domain.AlreadyExists, nil
	default:
		return domain.InsertFailed, err
	}
}

// Delete removes the edge and reports whether a row was actually removed.
func (r *EdgeRepo) Delete(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (bool, error) {
	table, err := r.table(kind)
	if err != nil {
		return false, err
	}
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(table),
		Key:          compositeKey(fieldActorID, actorID, fieldTargetID, targetID),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, fmt.Errorf("delete %s edge: %w", kind, err)
	}
	return len(out.Attributes) > 0, nil
}

// ExistingTargets returns the subset of targetIDs for which an edge from actorID exists.
// Lookups are batched; keys DynamoDB leaves unprocessed are retried a bounded number of
// times before the call fails.
func (r *EdgeRepo) ExistingTargets(ctx context.Context, kind domain.RelationKind, actorID string, targetIDs []string) (map[string]bool, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	found := make(map[string]bool, len(targetIDs))
	for _, ids := range chunk(dedupe(targetIDs), batchGetMaxKeys) {
		keys := make([]map[string]types.AttributeValue, 0, len(ids))
		for _, id := range ids {
			keys = append(keys, compositeKey(fieldActorID, actorID, fieldTargetID, id))
		}
		request := map[string]types.KeysAndAttributes{
			table: {Keys: keys, ProjectionExpression: aws.String(fieldTargetID)},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt > batchGetMaxUnprocessedTry {
				return nil, fmt.Errorf("batch get %s edges: unprocessed keys remain", kind)
			}
			out, err := r.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, fmt.Errorf("batch get %s edges: %w", kind, err)
			}
			var edges []domain.Edge
			if err := attributevalue.UnmarshalListOfMaps(out.Responses[table], &edges); err != nil {
				return nil, err
			}
			for _, e := range edges {
				found[e.TargetID] = true
			}
			request = out.UnprocessedKeys
		}
	}
	return found, nil
}

// DeleteByTarget removes every edge of kind pointing at targetID. Used when the target
// itself is deleted; failures on individual rows are logged and skipped.
func (r *EdgeRepo) DeleteByTarget(ctx context.Context, kind domain.RelationKind, targetID string) error {
	table, err := r.table(kind)
	if err != nil {
		return err
	}
	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(indexTargetID),
		KeyConditionExpression:    aws.String("#t = :tid"),
		ExpressionAttributeNames:  map[string]string{"#t": fieldTargetID},
		ExpressionAttributeValues: map[string]types.AttributeValue{":tid": &types.AttributeValueMemberS{Value: targetID}},
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("query %s edges by target: %w", kind, err)
		}
		var edges []domain.Edge
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &edges); err != nil {
			return err
		}
		for _, e := range edges {
			if _, err := r.Delete(ctx, kind, e.ActorID, e.TargetID); err != nil {
				slog.Warn("could not delete edge", "kind", kind, "actor_id", e.ActorID, "target_id", e.TargetID, "err", err)
			}
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
