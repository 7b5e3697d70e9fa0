// cmd/biosync/cmd/timeline/list.go
package timeline

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SriNikhita22/biosync-carechain/internal/app/client"
	"github.com/SriNikhita22/biosync-carechain/internal/domain/timeline"
)

var (
	listFilter string
	listSearch string
	listSort   string
	listFormat string
)

var categoryColors = map[timeline.Category]*color.Color{
	timeline.CategoryLabs:          color.New(color.FgCyan),
	timeline.CategorySurgeries:     color.New(color.FgRed),
	timeline.CategoryPrescriptions: color.New(color.FgGreen),
}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List timeline events",
	Long: `Lists timeline events filtered by category, searched by substring
and sorted by date. The search matches title, summary and notes,
case-insensitively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		order := timeline.SortOrder(listSort)
		if err := order.Validate(); err != nil {
			return err
		}

		// The chosen order becomes the active one, so later writes
		// persist the collection the way the user last viewed it.
		app.Timeline.SetSortOrder(order)
		events := app.Timeline.View(listFilter, listSearch, order)

		if listFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(events)
		}

		if len(events) == 0 {
			fmt.Println("No events found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "DATE\tCATEGORY\tTITLE\tATTACHMENT\tID\t\n")
		for _, e := range events {
			attach := ""
			if e.FileName != "" {
				attach = e.FileName
			}
			category := e.Category.DisplayName()
			if c, ok := categoryColors[e.Category]; ok {
				category = c.Sprint(category)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", e.Date, category, e.Title, attach, e.ID)
		}
		w.Flush()

		fmt.Printf("\n%d event(s)", len(events))
		if marker := app.Timeline.LastSync(); marker != "" {
			fmt.Printf(" | last updated %s", marker)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVar(&listFilter, "filter", "All", "category filter (Labs, Surgeries, Prescriptions, All)")
	ListCmd.Flags().StringVar(&listSearch, "search", "", "substring search over title, summary and notes")
	ListCmd.Flags().StringVar(&listSort, "sort", "desc", "date sort order (desc, asc)")
	ListCmd.Flags().StringVar(&listFormat, "format", "table", "output format (table, json)")
}
