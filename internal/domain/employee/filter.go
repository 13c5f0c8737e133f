package employee

import "strings"

// Filter returns the records whose stringified field values contain the
// search term, case-insensitively, preserving input order. An empty or
// whitespace-only term returns the input unchanged. Pure function; callers
// re-run it whenever the term or the record set changes.
func Filter(records []Employee, term string) []Employee {
	if strings.TrimSpace(term) == "" {
		return records
	}
	term = strings.ToLower(term)

	matched := make([]Employee, 0, len(records))
	for _, record := range records {
		for _, value := range record.Values() {
			if strings.Contains(strings.ToLower(value), term) {
				matched = append(matched, record)
				break
			}
		}
	}
	return matched
}
