package services

import (
	"strings"
	"time"

	"github.com/janime/gojanime/internal/models"
)

// formatAirDate converts an ISO date (YYYY-MM-DD) into the display form used
// by the suggest endpoint's moreInfo field, e.g. "Mar 5, 2021". Malformed
// input yields an empty string, which never matches a candidate.
func formatAirDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// pickSuggestion selects the best catalog candidate for query. An exact
// case-insensitive name match always wins; otherwise a candidate whose first
// moreInfo field equals formattedDate; otherwise the candidate sharing the
// most query tokens, in stable order.
func pickSuggestion(suggestions []models.AniwatchSuggestion, query, formattedDate string) (models.AniwatchSuggestion, bool) {
	for _, s := range suggestions {
		if strings.EqualFold(s.Name, query) {
			return s, true
		}
	}

	if formattedDate != "" {
		for _, s := range suggestions {
			if len(s.MoreInfo) > 0 && s.MoreInfo[0] == formattedDate {
				return s, true
			}
		}
	}

	return pickByTokenOverlap(suggestions, query)
}

// pickByTokenOverlap ranks candidates by the count of distinct query tokens
// their name contains, ties broken by original candidate order.
func pickByTokenOverlap(suggestions []models.AniwatchSuggestion, query string) (models.AniwatchSuggestion, bool) {
	tokens := distinctTokens(query)

	var best models.AniwatchSuggestion
	bestScore := 0
	for _, s := range suggestions {
		if score := tokenScore(s.Name, tokens); score > bestScore {
			best = s
			bestScore = score
		}
	}

	return best, bestScore > 0
}

// tokenScore counts how many of the tokens appear in name, case-insensitively.
func tokenScore(name string, tokens []string) int {
	nameLower := strings.ToLower(name)

	score := 0
	for _, token := range tokens {
		if strings.Contains(nameLower, token) {
			score++
		}
	}
	return score
}

// distinctTokens splits query on whitespace and deduplicates tokens
// case-insensitively.
func distinctTokens(query string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, token := range strings.Fields(strings.ToLower(query)) {
		if !seen[token] {
			seen[token] = true
			tokens = append(tokens, token)
		}
	}
	return tokens
}
