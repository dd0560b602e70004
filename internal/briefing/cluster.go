package briefing

import (
	"fmt"
	"strings"

	"github.com/abhisek/polski/internal/catalog"
)

// ClusterByCategory groups concepts by category, keeping input order within each group.
func ClusterByCategory(concepts []catalog.Concept) map[catalog.Category][]catalog.Concept {
	out := make(map[catalog.Category][]catalog.Concept)
	for _, c := range concepts {
		out[c.Category] = append(out[c.Category], c)
	}
	return out
}

// SplitByCategory separates grammar from vocabulary concepts.
func SplitByCategory(concepts []catalog.Concept) (grammar, vocabulary []catalog.Concept) {
	clusters := ClusterByCategory(concepts)
	return clusters[catalog.CategoryGrammar], clusters[catalog.CategoryVocabulary]
}

// SessionObjectives derives the learning goals for a set of target concepts.
func SessionObjectives(concepts []catalog.Concept) []string {
	switch len(concepts) {
	case 0:
		return nil
	case 1:
		c := concepts[0]
		if c.Category == catalog.CategoryVocabulary {
			return []string{fmt.Sprintf("Build active recall of %q in varied sentence contexts", c.Name)}
		}
		return []string{fmt.Sprintf("Build mastery of %q through varied, focused practice", c.Name)}
	}

	grammar, vocab := SplitByCategory(concepts)
	var objectives []string
	switch {
	case len(grammar) > 0 && len(vocab) > 0:
		objectives = append(objectives, fmt.Sprintf(
			"Apply %s using the vocabulary of %s",
			names(grammar), names(vocab)))
	case len(grammar) > 1:
		objectives = append(objectives, fmt.Sprintf("Distinguish and combine the grammar points %s", names(grammar)))
	default:
		objectives = append(objectives, fmt.Sprintf("Use %s together in context", names(vocab)))
	}
	objectives = append(objectives, "Interleave the target concepts so each question is answered without knowing which concept comes next")
	return objectives
}

func names(concepts []catalog.Concept) string {
	quoted := make([]string, len(concepts))
	for i, c := range concepts {
		quoted[i] = fmt.Sprintf("%q", c.Name)
	}
	return strings.Join(quoted, ", ")
}
