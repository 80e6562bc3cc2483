package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/routeworks/docscan/internal/model"
	"github.com/routeworks/docscan/internal/xlsxtable"
)

var analyzeConcurrency int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Extract deliveries from document files",
	Long:  "Reads each file (.txt, .html or .xlsx), extracts delivery records and prints one JSON result per file to stdout.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		results := make([]*model.ExtractionResult, len(args))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(analyzeConcurrency)
		var mu sync.Mutex
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				doc, err := readDocument(path)
				if err != nil {
					return err
				}
				result, err := env.Analyzer.Analyze(gctx, doc)
				if err != nil {
					return eris.Wrapf(err, "analyze %s", path)
				}
				mu.Lock()
				results[i] = result
				if _, err := env.History.Record(gctx, result, false); err != nil {
					zap.S().Warnw("recording history failed", "file", path, "error", err)
				}
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for i, result := range results {
			zap.S().Infow("analyzed document",
				"file", args[i],
				"deliveries", result.DeliveryCount,
				"method", result.Method,
			)
			if err := enc.Encode(result); err != nil {
				return eris.Wrap(err, "encode result")
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 4, "number of files analyzed in parallel")
	rootCmd.AddCommand(analyzeCmd)
}

// readDocument loads a file as an extraction input. Spreadsheets are
// flattened to table markup; HTML goes in as HTMLContent so the analyzer
// flattens it; anything else is treated as plain text.
func readDocument(path string) (model.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RawDocument{}, eris.Wrapf(err, "read %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		text, err := xlsxtable.Flatten(data)
		if err != nil {
			return model.RawDocument{}, eris.Wrapf(err, "flatten %s", path)
		}
		return model.RawDocument{Text: text}, nil
	case ".html", ".htm":
		return model.RawDocument{HTMLContent: string(data)}, nil
	default:
		return model.RawDocument{Text: string(data)}, nil
	}
}
