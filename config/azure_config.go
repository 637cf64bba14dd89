package config

import (
	"log/slog"
	"os"
)

// AzureConfig holds the settings for the Azure Text Analytics service.
// It is loaded once at startup and passed explicitly to the client.
type AzureConfig struct {
	Endpoint string
	Key      string
	// Region is read from AZURE_REGION but no request uses it.
	Region string
}

// GetAzureConfig reads AZURE_ENDPOINT, AZURE_KEY and AZURE_REGION. It never
// fails: unset variables are returned as empty strings and show up later as
// a rejected request.
func GetAzureConfig() AzureConfig {
	return AzureConfig{
		Endpoint: os.Getenv("AZURE_ENDPOINT"),
		Key:      os.Getenv("AZURE_KEY"),
		Region:   os.Getenv("AZURE_REGION"),
	}
}

// LogValue keeps the subscription key out of the logs.
func (c AzureConfig) LogValue() slog.Value {
	key := ""
	if c.Key != "" {
		key = "[redacted]"
	}
	return slog.GroupValue(
		slog.String("endpoint", c.Endpoint),
		slog.String("key", key),
		slog.String("region", c.Region),
	)
}
