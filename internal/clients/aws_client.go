package clients

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spacesedan/sentilines/config"
)

func GetAWSConfig(ctx context.Context, run config.RunConfig) (aws.Config, error) {
	slog.Info("[AWSClient] Initializing AWS Config...",
		slog.String("region", run.AWSRegion))

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(run.AWSRegion))
	if err != nil {
		slog.Error("[AWSClient] Failed to load AWS config",
			slog.String("error", err.Error()))
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return cfg, nil
}

// GetDynamoDBClient builds a DynamoDB client, pointing it at AWS_ENDPOINT
// when one is set (e.g. dynamodb-local).
func GetDynamoDBClient(ctx context.Context, run config.RunConfig) (*dynamodb.Client, error) {
	cfg, err := GetAWSConfig(ctx, run)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if run.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(run.AWSEndpoint)
		}
	}), nil
}
