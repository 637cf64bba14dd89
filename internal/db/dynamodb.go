package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/sentilines/internal/models"
	"github.com/spacesedan/sentilines/internal/utils"
)

const MAX_BATCH_SIZE = 25

// BatchWriteAPI is the part of *dynamodb.Client the archive needs.
type BatchWriteAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

type ResultItem struct {
	RunID     string `dynamodbav:"run_id"`
	Line      int    `dynamodbav:"line"`
	Sentence  string `dynamodbav:"sentence"`
	Analysis  string `dynamodbav:"analysis"`
	CreatedAt int64  `dynamodbav:"created_at"`
}

// ResultArchive copies a finished run into a DynamoDB table keyed by
// (run_id, line).
type ResultArchive struct {
	client BatchWriteAPI
	table  string
	now    func() time.Time
}

func NewResultArchive(client BatchWriteAPI, table string) *ResultArchive {
	return &ResultArchive{client: client, table: table, now: time.Now}
}

func (a *ResultArchive) Store(ctx context.Context, runID string, records []models.ResultRecord) error {
	createdAt := a.now().Unix()

	writeRequests := make([]types.WriteRequest, 0, len(records))
	for i, record := range records {
		item, err := attributevalue.MarshalMap(ResultItem{
			RunID:     runID,
			Line:      i + 1,
			Sentence:  record.Sentence,
			Analysis:  string(record.Analysis),
			CreatedAt: createdAt,
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to marshal record %d: %w", i+1, err)
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}

	for _, batch := range utils.Chunk(writeRequests, MAX_BATCH_SIZE) {
		if err := ctx.Err(); err != nil {
			slog.Warn("[DynamoDB] context canceled")
			return err
		}

		out, err := a.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				a.table: batch,
			},
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to batch write results: %w", err)
		}

		if remaining := len(out.UnprocessedItems[a.table]); remaining > 0 {
			slog.Error("[DynamoDB] Some results were not written",
				slog.Int("remaining", remaining))
			return fmt.Errorf("[DynamoDB] %d results were not written", remaining)
		}
	}

	slog.Info("[DynamoDB] Successfully archived results",
		slog.String("table", a.table),
		slog.String("run_id", runID),
		slog.Int("count", len(records)))

	return nil
}
