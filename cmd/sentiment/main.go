package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spacesedan/sentilines/config"
	"github.com/spacesedan/sentilines/internal/clients"
	"github.com/spacesedan/sentilines/internal/db"
	"github.com/spacesedan/sentilines/internal/logging"
	"github.com/spacesedan/sentilines/internal/processing"
	"github.com/spacesedan/sentilines/internal/sentiment"
)

func main() {
	config.LoadEnv(config.GetRunConfig().Env)

	// re-read so values from the env files apply
	run := config.GetRunConfig()
	logging.InitLogger(run.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runBatch(ctx, run); err != nil {
		slog.Error("[Main] Sentiment analysis failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func runBatch(ctx context.Context, run config.RunConfig) error {
	analyzer, err := newAnalyzer(run)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(processing.OUTPUT_DIR, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", processing.OUTPUT_DIR, err)
	}

	fmt.Println("Iniciando análise de sentimentos...")
	records, err := processing.ProcessInputFile(ctx, processing.INPUT_FILE, processing.OUTPUT_FILE, analyzer)
	if err != nil {
		return err
	}
	fmt.Printf("Análise concluída! Resultados salvos em %s\n", processing.OUTPUT_FILE)

	if run.ArchiveEnabled() {
		dynamo, err := clients.GetDynamoDBClient(ctx, run)
		if err != nil {
			return err
		}
		archive := db.NewResultArchive(dynamo, run.ResultsTable)
		if err := archive.Store(ctx, uuid.NewString(), records); err != nil {
			return err
		}
	}

	fmt.Printf("Processo finalizado. Confira os resultados no diretório '%s'.\n", processing.OUTPUT_DIR)
	return nil
}

func newAnalyzer(run config.RunConfig) (clients.Analyzer, error) {
	switch run.Analyzer {
	case config.ANALYZER_AZURE:
		return clients.NewAzureClient(config.GetAzureConfig(), nil), nil
	case config.ANALYZER_VADER:
		slog.Info("[Main] Using local VADER analyzer")
		return sentiment.NewVaderAnalyzer(), nil
	default:
		return nil, fmt.Errorf("unknown analyzer %q", run.Analyzer)
	}
}
