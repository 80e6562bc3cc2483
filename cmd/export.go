package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/routeworks/docscan/internal/model"
)

var exportCmd = &cobra.Command{
	Use:   "export <result.json>",
	Short: "Export extracted deliveries as planning tasks",
	Long:  "Reads an analysis result (or a bare delivery array) from a JSON file and creates a task per valid delivery.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrapf(err, "read %s", args[0])
		}

		records, err := decodeRecords(data)
		if err != nil {
			return err
		}

		summary := env.Exporter.Export(ctx, records)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return eris.Wrap(err, "encode summary")
		}
		if !summary.Success {
			return eris.New("export created no tasks")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

// decodeRecords accepts either a full analysis result or a bare array of
// deliveries.
func decodeRecords(data []byte) ([]model.DeliveryRecord, error) {
	var result model.ExtractionResult
	if err := json.Unmarshal(data, &result); err == nil && len(result.Deliveries) > 0 {
		return result.Deliveries, nil
	}

	var records []model.DeliveryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, eris.Wrap(err, "decode deliveries")
	}
	if len(records) == 0 {
		return nil, eris.New("no deliveries in input")
	}
	return records, nil
}
