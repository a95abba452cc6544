package cmd

import (
	"os"

	"evidencija/cli/internal/backend"
	"evidencija/cli/internal/record"
	"evidencija/cli/internal/report"
	"evidencija/cli/internal/runner"

	"github.com/spf13/cobra"
)

var (
	updateFields record.Payload
	updateFile   string
	updateOutput string
)

// updateCmd sends one record to the update endpoint.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a device assignment record",
	Long: `The update command sends one record to the update endpoint with a PUT request.

The record is read from --file (JSON or YAML) and/or flags; flags override values
from the file. On a 200, 201 or 202 response with a JSON body the response is
saved pretty-printed to the output file.`,
	Example: `  evidencija update --id 67de9acdf9be4027c119b453 --date 21.3.2025 \
    --device "Ručni Čitač 40199" --note "3. smjena" --reg ŠI-968-JM --assignee Ljubić
  evidencija update --file record.yml --output out/update.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := updateFields
		if updateFile != "" {
			fromFile, err := record.LoadPayload(updateFile)
			if err != nil {
				return err
			}
			p = fromFile.Merge(updateFields)
		}

		return withAPI("Sending update", func(api backend.API) error {
			u := &runner.Update{
				API:       api,
				Presenter: report.New(os.Stdout),
				Output:    outputPath(updateOutput, cfg.Update.Output),
			}
			if _, err := u.Run(cmd.Context(), p); err != nil {
				return reportedError{err}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	f := updateCmd.Flags()
	f.StringVar(&updateFields.ID, "id", "", "Record _id (required)")
	f.StringVar(&updateFields.Date, "date", "", "Assignment date in D.M.YYYY form, e.g. 21.3.2025")
	f.StringVar(&updateFields.DeviceName, "device", "", "Device name")
	f.StringVar(&updateFields.Note, "note", "", "Note (napomena)")
	f.StringVar(&updateFields.Registration, "reg", "", "Vehicle registration (reg_oznaka)")
	f.StringVar(&updateFields.Assignee, "assignee", "", "Person the device is assigned to (zadužio)")
	f.StringVarP(&updateFile, "file", "f", "", "Read the record from a JSON or YAML file")
	f.StringVarP(&updateOutput, "output", "o", "", "Where to save the response (default from config)")
}
