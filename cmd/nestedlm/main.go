package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"nestedlm/adapters/dataset"
	"nestedlm/app"
	"nestedlm/internal"
	"nestedlm/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nestedlm",
		Short: "Sequential F-tests for nested linear regression models",
	}

	rootCmd.AddCommand(newCompareCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCompareCmd() *cobra.Command {
	var response string
	var modelFlags []string

	cmd := &cobra.Command{
		Use:   "compare [data-file]",
		Short: "Fit nested models on a dataset and print the F-test table",
		Long: `Fit a sequence of nested linear models on a CSV or XLSX dataset and
compare them with sequential F-tests.

Each --model flag lists comma-separated predictor columns; repeat the flag
once per model in order of decreasing complexity. An empty spec ("") fits
the intercept-only null model.

Example:
  nestedlm compare secretion.csv --response Result --model Treatment --model ""`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; ignore a missing file like the dev setup does.
			_ = godotenv.Load()
			cfg := config.Load()

			path := cfg.DataFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no data file: pass one as an argument or set NESTEDLM_DATA_FILE")
			}

			tbl, err := dataset.NewReader(path).Read()
			if err != nil {
				return err
			}

			specs := make([][]string, len(modelFlags))
			for i, f := range modelFlags {
				specs[i] = splitPredictors(f)
			}

			svc := app.NewCompareService(internal.NewDefaultLogger())
			cmp, err := svc.Compare(cmd.Context(), tbl, response, specs)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), cmp.Table)
			return nil
		},
	}

	cmd.Flags().StringVar(&response, "response", "", "Response column name")
	cmd.Flags().StringArrayVar(&modelFlags, "model", nil,
		"Comma-separated predictor columns; one flag per model, decreasing complexity")
	_ = cmd.MarkFlagRequired("response")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func splitPredictors(spec string) []string {
	var out []string
	for _, p := range strings.Split(spec, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
