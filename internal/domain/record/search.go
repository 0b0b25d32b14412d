package record

import "strings"

// Matches reports whether query is empty or occurs, ignoring case, in any
// of the given fields. Whitespace in query is significant.
func Matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Search builds a Filter predicate matching query against a record's
// searchable fields.
func Search[T Entity](query string) func(T) bool {
	return func(item T) bool {
		return Matches(query, item.SearchFields()...)
	}
}
