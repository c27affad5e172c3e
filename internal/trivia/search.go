package trivia

import "strings"

// NormalizeSearchTerm reports whether raw is a real search. Blank terms are not searches;
// callers route them to the create/list path instead of matching everything.
func NormalizeSearchTerm(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false
	}
	return raw, true
}

// Search keeps questions whose text contains term, ignoring case. Answers are not matched.
// Input order is preserved.
func Search(questions []Question, term string) []Question {
	needle := strings.ToLower(term)
	matches := make([]Question, 0, len(questions))
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}
