package logic

import (
	"strings"

	"peoplepicker/internal/domain"
)

// FilterPeople returns the people whose name contains query, ignoring case.
// An empty query returns source itself. Order follows source and source is
// never modified.
func FilterPeople(query string, source []domain.Person) []domain.Person {
	if query == "" {
		return source
	}

	lowerQuery := strings.ToLower(query)
	matches := make([]domain.Person, 0, len(source))
	for _, person := range source {
		if MatchesName(person, lowerQuery) {
			matches = append(matches, person)
		}
	}
	return matches
}

// MatchesName reports whether the person's name contains lowerQuery.
// lowerQuery must already be lower-cased.
func MatchesName(person domain.Person, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(person.Name), lowerQuery)
}
