package cmd

import (
	"fmt"
	"os"
	"time"

	"evidencija/cli/internal/backend"
	"evidencija/cli/internal/record"
	"evidencija/cli/internal/report"
	"evidencija/cli/internal/runner"

	"github.com/spf13/cobra"
)

var (
	queryFrom   string
	queryTo     string
	queryDate   string
	queryOutput string
)

// queryCmd fetches the records of a date range.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query device assignment records by date",
	Long: `The query command fetches records between --from and --to (YYYY-MM-DD, both
inclusive) with a GET request. Both default to today. --date selects a single day.

On a 200 response the number of records is printed, the full response is saved to
the output file and the first record is shown as a sample.`,
	Example: `  evidencija query
  evidencija query --date 2025-03-20
  evidencija query --from 2025-03-01 --to 2025-03-31 -o march.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := queryRange(time.Now())
		if err != nil {
			return err
		}

		return withAPI("Fetching records", func(api backend.API) error {
			q := &runner.Query{
				API:       api,
				Presenter: report.New(os.Stdout),
				Output:    outputPath(queryOutput, cfg.Query.Output),
			}
			if _, err := q.Run(cmd.Context(), r); err != nil {
				return reportedError{err}
			}
			return nil
		})
	},
}

// queryRange resolves the range flags against today.
func queryRange(now time.Time) (record.DateRange, error) {
	if queryDate != "" {
		if queryFrom != "" || queryTo != "" {
			return record.DateRange{}, fmt.Errorf("--date cannot be combined with --from or --to")
		}
		return record.DateRange{From: queryDate, To: queryDate}, nil
	}
	r := record.Day(now)
	if queryFrom != "" {
		r.From = queryFrom
	}
	if queryTo != "" {
		r.To = queryTo
	}
	return r, nil
}

func init() {
	rootCmd.AddCommand(queryCmd)

	f := queryCmd.Flags()
	f.StringVar(&queryFrom, "from", "", "First day, YYYY-MM-DD (default today)")
	f.StringVar(&queryTo, "to", "", "Last day, YYYY-MM-DD (default today)")
	f.StringVarP(&queryDate, "date", "d", "", "Single day, YYYY-MM-DD")
	f.StringVarP(&queryOutput, "output", "o", "", "Where to save the response (default from config)")
}
