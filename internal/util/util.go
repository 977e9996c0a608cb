// Package util holds small text helpers shared by the usecases.
package util

import (
	"slices"
	"strings"
)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSkills lowercases and trims skills, dropping blanks and duplicates.
// The result is sorted so a skill set has one canonical form.
func NormalizeSkills(skills []string) []string {
	result := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || slices.Contains(result, skill) {
			continue
		}
		result = append(result, skill)
	}
	slices.Sort(result)

	return result
}

// SplitTerms splits a comma separated query into lowercased, trimmed,
// non-empty terms.
func SplitTerms(query string) []string {
	var terms []string
	for _, part := range strings.Split(strings.ToLower(query), ",") {
		if part = strings.TrimSpace(part); part != "" {
			terms = append(terms, part)
		}
	}

	return terms
}

// ContainsFold reports whether substr is within s, ignoring case. An empty
// substr never matches.
func ContainsFold(s, substr string) bool {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return false
	}

	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// OverlapsFold reports whether either value contains the other, ignoring
// case. Empty values never match.
func OverlapsFold(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}
