package insight

import (
	"sort"
	"strings"

	"github.com/campuscare/healthbot/internal/domain"
)

const (
	// minMentions is how often a term must recur in the window before it
	// counts as a concern; a single mention never becomes a tag.
	minMentions = 2
	// maxTags caps the ranked tag list.
	maxTags = 3
)

// AnalyzePatterns scans the user-message side of a history window for
// recurring lexicon terms and returns up to three concern tags, most
// frequent first. Ties rank in lexicon declaration order.
func AnalyzePatterns(turns []domain.ChatTurn) []string {
	counts := make(map[string]int)

	for _, turn := range turns {
		message := strings.ToLower(turn.UserMessage)
		for _, term := range Lexicon {
			if strings.Contains(message, term) {
				counts[term]++
			}
		}
	}

	// Candidates in lexicon order; the stable sort keeps that order on ties.
	var tags []string
	for _, term := range Lexicon {
		if counts[term] >= minMentions {
			tags = append(tags, term)
		}
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return counts[tags[i]] > counts[tags[j]]
	})

	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}
