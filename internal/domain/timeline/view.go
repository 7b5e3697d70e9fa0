package timeline

import "strings"

// View returns a filtered, searched and sorted projection of the
// collection. filter is a category name or FilterAll; search is a
// case-insensitive substring matched against title, summary and notes;
// the date sort is stable, so equal dates keep their stored relative
// order. View never mutates the stored collection.
func (s *Store) View(filter string, search string, order SortOrder) []Event {
	s.mu.Lock()
	events := s.snapshot()
	s.mu.Unlock()

	return Project(events, filter, search, order)
}

// Project applies the view rules to an arbitrary event slice.
func Project(events []Event, filter string, search string, order SortOrder) []Event {
	needle := strings.ToLower(search)

	out := make([]Event, 0, len(events))
	for _, e := range events {
		if filter != "" && filter != FilterAll && string(e.Category) != filter {
			continue
		}
		if needle != "" && !matches(e, needle) {
			continue
		}
		out = append(out, e)
	}

	sortByDate(out, order)
	return out
}

func matches(e Event, needle string) bool {
	return strings.Contains(strings.ToLower(e.Title), needle) ||
		strings.Contains(strings.ToLower(e.Summary), needle) ||
		strings.Contains(strings.ToLower(e.Notes), needle)
}
