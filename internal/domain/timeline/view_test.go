package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []Event {
	return []Event{
		{ID: "1", Date: "2024-03-01", Category: CategoryLabs, Title: "CBC Panel", Summary: "WBC slightly elevated"},
		{ID: "2", Date: "2024-01-15", Category: CategorySurgeries, Title: "Appendectomy", Notes: "laparoscopic"},
		{ID: "3", Date: "2024-03-01", Category: CategoryLabs, Title: "Lipid Profile", Summary: "LDL high"},
		{ID: "4", Date: "2024-02-10", Category: CategoryPrescriptions, Title: "Metformin", Summary: "500mg twice daily"},
	}
}

func TestProject_FilterByCategory(t *testing.T) {
	got := Project(sampleEvents(), string(CategoryLabs), "", SortDesc)

	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, CategoryLabs, e.Category)
	}
}

func TestProject_FilterAllPassesEverything(t *testing.T) {
	got := Project(sampleEvents(), FilterAll, "", SortDesc)
	assert.Len(t, got, 4)

	got = Project(sampleEvents(), "", "", SortDesc)
	assert.Len(t, got, 4)
}

func TestProject_SearchCaseInsensitiveAcrossFields(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "title match", search: "cbc", want: []string{"1"}},
		{name: "summary match", search: "LDL", want: []string{"3"}},
		{name: "notes match", search: "LAPARO", want: []string{"2"}},
		{name: "empty search returns all", search: "", want: []string{"1", "3", "4", "2"}},
		{name: "no match", search: "dialysis", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(sampleEvents(), FilterAll, tt.search, SortDesc)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestProject_SortOrdersAreExactReversals(t *testing.T) {
	asc := Project(sampleEvents(), FilterAll, "", SortAsc)
	desc := Project(sampleEvents(), FilterAll, "", SortDesc)

	require.Len(t, asc, 4)
	require.Len(t, desc, 4)

	// Dates asc: 2024-01-15, 2024-02-10, 2024-03-01 (1 then 3, stable).
	assert.Equal(t, []string{"2", "4", "1", "3"}, idsOf(asc))
	// Desc reverses the date groups but keeps insertion order inside ties.
	assert.Equal(t, []string{"1", "3", "4", "2"}, idsOf(desc))
}

func TestProject_StableTieBreakByInsertionOrder(t *testing.T) {
	got := Project(sampleEvents(), string(CategoryLabs), "", SortAsc)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestProject_Idempotent(t *testing.T) {
	events := sampleEvents()

	first := Project(events, string(CategoryLabs), "panel", SortAsc)
	second := Project(events, string(CategoryLabs), "panel", SortAsc)

	assert.Equal(t, first, second)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	events := sampleEvents()
	original := idsOf(events)

	Project(events, FilterAll, "", SortAsc)

	assert.Equal(t, original, idsOf(events))
}

func idsOf(events []Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
