// cmd/biosync/cmd/timeline/edit.go
package timeline

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

var (
	editDate     string
	editCategory string
	editTitle    string
	editSummary  string
	editNotes    string
	editAttach   string
)

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a timeline event",
	Long: `Updates the event matching the id. Only the supplied flags change;
everything else keeps its current value. The modification timestamp
and the last-sync marker are re-stamped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		var draft timeline.Draft
		if cmd.Flags().Changed("date") {
			draft.Date = &editDate
		}
		if cmd.Flags().Changed("category") {
			category := timeline.Category(editCategory)
			draft.Category = &category
		}
		if cmd.Flags().Changed("title") {
			draft.Title = &editTitle
		}
		if cmd.Flags().Changed("summary") {
			draft.Summary = &editSummary
		}
		if cmd.Flags().Changed("notes") {
			draft.Notes = &editNotes
		}
		if cmd.Flags().Changed("attach") {
			name, dataURL, err := encodeAttachment(editAttach)
			if err != nil {
				return err
			}
			draft.FileName = &name
			draft.FileData = &dataURL
		}

		event, err := app.Timeline.Update(cmd.Context(), args[0], draft)
		if timeline.IsNotFound(err) {
			return fmt.Errorf("no event with id %s", args[0])
		}
		if err != nil {
			return err
		}

		color.Green("Event updated: %s", event.Title)
		fmt.Printf("Last modified: %s\n", event.LastModified)
		return nil
	},
}

func init() {
	EditCmd.Flags().StringVar(&editDate, "date", "", "event date, YYYY-MM-DD")
	EditCmd.Flags().StringVar(&editCategory, "category", "", "category: Labs, Surgeries or Prescriptions")
	EditCmd.Flags().StringVar(&editTitle, "title", "", "event title")
	EditCmd.Flags().StringVar(&editSummary, "summary", "", "short summary")
	EditCmd.Flags().StringVar(&editNotes, "notes", "", "free-form notes")
	EditCmd.Flags().StringVar(&editAttach, "attach", "", "path to a replacement attachment (max 2 MB)")
}
