// cmd/biosync/cmd/timeline/add.go
package timeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/attachment"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

var (
	addDate     string
	addCategory string
	addTitle    string
	addSummary  string
	addNotes    string
	addAttach   string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a timeline event",
	Long: `Adds an event to the timeline. Omitted fields receive defaults:
today's date, the Labs category and the title "Untitled Record".
An attachment is limited to 2 MB and stored inline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		draft := draftFromFlags(cmd)
		if addAttach != "" {
			name, dataURL, err := encodeAttachment(addAttach)
			if err != nil {
				return err
			}
			draft.FileName = &name
			draft.FileData = &dataURL
		}

		event, err := app.Timeline.Create(cmd.Context(), draft)
		if err != nil {
			return err
		}

		color.Green("Event added: %s", event.Title)
		fmt.Printf("ID: %s | %s | %s\n", event.ID, event.Date, event.Category.DisplayName())
		return nil
	},
}

func draftFromFlags(cmd *cobra.Command) timeline.Draft {
	var draft timeline.Draft
	if cmd.Flags().Changed("date") {
		draft.Date = &addDate
	}
	if cmd.Flags().Changed("category") {
		category := timeline.Category(addCategory)
		draft.Category = &category
	}
	if cmd.Flags().Changed("title") {
		draft.Title = &addTitle
	}
	if cmd.Flags().Changed("summary") {
		draft.Summary = &addSummary
	}
	if cmd.Flags().Changed("notes") {
		draft.Notes = &addNotes
	}
	return draft
}

func encodeAttachment(path string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("open attachment: %w", err)
	}
	defer f.Close()

	att, err := attachment.Encode(filepath.Base(path), f)
	if err != nil {
		return "", "", fmt.Errorf("encode attachment: %w", err)
	}
	return att.FileName, att.DataURL, nil
}

func init() {
	AddCmd.Flags().StringVar(&addDate, "date", "", "event date, YYYY-MM-DD (defaults to today)")
	AddCmd.Flags().StringVar(&addCategory, "category", "", "category: Labs, Surgeries or Prescriptions (defaults to Labs)")
	AddCmd.Flags().StringVar(&addTitle, "title", "", "event title")
	AddCmd.Flags().StringVar(&addSummary, "summary", "", "short summary")
	AddCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	AddCmd.Flags().StringVar(&addAttach, "attach", "", "path to an attachment file (max 2 MB)")
}
