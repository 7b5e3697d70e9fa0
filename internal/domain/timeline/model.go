package timeline

import (
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// Category classifies a timeline event.
type Category string

const (
	CategoryLabs          Category = "Labs"
	CategorySurgeries     Category = "Surgeries"
	CategoryPrescriptions Category = "Prescriptions"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryLabs, CategorySurgeries, CategoryPrescriptions}

func (Category) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: "string",
		Enum: []any{
			string(CategoryLabs),
			string(CategorySurgeries),
			string(CategoryPrescriptions),
		},
		Description: "Category of a medical timeline event",
		Examples:    []any{CategoryLabs},
	}
}

// Validate implements the huma.Validatable interface.
func (c Category) Validate() error {
	switch c {
	case CategoryLabs, CategorySurgeries, CategoryPrescriptions:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidCategory, c)
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryLabs:
		return "Lab Result"
	case CategorySurgeries:
		return "Surgery"
	case CategoryPrescriptions:
		return "Prescription"
	default:
		return "Unknown"
	}
}

// SortOrder determines the date ordering of the collection.
type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

func (SortOrder) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        "string",
		Enum:        []any{string(SortDesc), string(SortAsc)},
		Description: "Date sort order of the timeline",
		Examples:    []any{SortDesc},
	}
}

// Validate implements the huma.Validatable interface.
func (o SortOrder) Validate() error {
	switch o {
	case SortDesc, SortAsc:
		return nil
	}
	return fmt.Errorf("invalid sort order: %s", o)
}

// FilterAll matches every category in View.
const FilterAll = "All"

// Event is one entry in the CareChain timeline.
type Event struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Category     Category `json:"category"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Notes        string   `json:"notes,omitempty"`
	FileName     string   `json:"fileName,omitempty"`
	FileData     string   `json:"fileData,omitempty"`
	LastModified string   `json:"lastModified,omitempty"`
}

// Draft carries the user-editable fields of an event. Nil pointers mean
// "not supplied", which is distinct from an explicit empty value.
type Draft struct {
	Date     *string
	Category *Category
	Title    *string
	Summary  *string
	Notes    *string
	FileName *string
	FileData *string
}

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "Jan 2, 2006 - 03:04 PM"
)

// FormatTimestamp renders t in the human-readable form used for
// last-modified and last-sync markers.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func parseDate(d string) time.Time {
	t, err := time.Parse(dateLayout, d)
	if err != nil {
		return time.Time{}
	}
	return t
}
