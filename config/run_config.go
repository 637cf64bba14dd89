package config

import "os"

const (
	ANALYZER_AZURE = "azure"
	ANALYZER_VADER = "vader"
)

type RunConfig struct {
	Env          string
	LogLevel     string
	Analyzer     string
	ResultsTable string
	AWSEndpoint  string
	AWSRegion    string
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func GetRunConfig() RunConfig {
	return RunConfig{
		Env:          getEnv("APP_ENV", "dev"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Analyzer:     getEnv("ANALYZER", ANALYZER_AZURE),
		ResultsTable: os.Getenv("RESULTS_TABLE"),
		AWSEndpoint:  os.Getenv("AWS_ENDPOINT"),
		AWSRegion:    getEnv("AWS_REGION", "us-west-2"),
	}
}

// ArchiveEnabled reports whether results should also be stored in DynamoDB.
func (c RunConfig) ArchiveEnabled() bool {
	return c.ResultsTable != ""
}
