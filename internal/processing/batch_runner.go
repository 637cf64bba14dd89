package processing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spacesedan/sentilines/internal/clients"
	"github.com/spacesedan/sentilines/internal/models"
)

const (
	INPUT_FILE  = "inputs/sentencas.txt"
	OUTPUT_DIR  = "outputs"
	OUTPUT_FILE = OUTPUT_DIR + "/resultados.json"
	JSON_INDENT = "    "
)

var (
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// ProcessInputFile analyzes every line of inputFile in order and writes the
// records to outputFile. Blank lines are kept. If the analyzer fails, the run
// stops and outputFile is left untouched.
func ProcessInputFile(ctx context.Context, inputFile, outputFile string, analyzer clients.Analyzer) ([]models.ResultRecord, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		slog.Error("[BatchRunner] Failed to read input",
			slog.String("input", inputFile),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w %s: %w", ErrReadInput, inputFile, err)
	}

	lines := SplitLines(data)
	slog.Info("[BatchRunner] Starting analysis",
		slog.String("input", inputFile),
		slog.Int("lines", len(lines)))
	start := time.Now()

	records := make([]models.ResultRecord, 0, len(lines))
	for i, line := range lines {
		sentence := strings.TrimSpace(line)

		analysis, err := analyzer.AnalyzeSentiment(ctx, sentence)
		if err != nil {
			slog.Error("[BatchRunner] Analysis failed, aborting run",
				slog.Int("line", i+1),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		records = append(records, models.ResultRecord{
			Sentence: sentence,
			Analysis: analysis,
		})
	}

	if err := WriteResults(outputFile, records); err != nil {
		return nil, err
	}

	slog.Info("[BatchRunner] Analysis complete, results saved",
		slog.String("output", outputFile),
		slog.Int("records", len(records)),
		slog.Duration("elapsed", time.Since(start)))

	return records, nil
}

// SplitLines splits file contents the way a line reader would. "\r\n", "\r"
// and "\n" all end a line, a final line without a terminator still counts,
// and empty input has no lines.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// EncodeResults renders records as a 4-space indented JSON array with
// non-ASCII and HTML characters left literal.
func EncodeResults(records []models.ResultRecord) ([]byte, error) {
	if records == nil {
		records = []models.ResultRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSON_INDENT)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}

	return unescapeLineSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// unescapeLineSeparators writes \u2028 and \u2029 escapes back as literal
// characters. encoding/json always escapes them, even with HTML escaping off.
// Escaped backslashes are copied as a pair so "\\u2028" is left alone.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}

		if i+5 < len(b) && b[i+1] == 'u' {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}

		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// WriteResults creates the parent directory if needed and replaces
// outputFile with the encoded records.
func WriteResults(outputFile string, records []models.ResultRecord) error {
	out, err := EncodeResults(records)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, outputFile, err)
	}

	if err := os.MkdirAll(filepath.Dir(outputFile), 0o755); err != nil {
		slog.Error("[BatchRunner] Failed to create output directory",
			slog.String("output", outputFile),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, outputFile, err)
	}

	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		slog.Error("[BatchRunner] Failed to write output",
			slog.String("output", outputFile),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, outputFile, err)
	}

	return nil
}
