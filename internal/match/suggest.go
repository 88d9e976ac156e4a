package match

import (
	"slices"
)

// MinScore is the lowest similarity a candidate needs to be suggested.
const MinScore = 0.6

type candidate struct {
	name  string
	score float64
	index int
}

// Suggest returns up to limit names from candidates that are similar to
// name, best match first. Equal scores keep the order of candidates.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var ranked []candidate

	for i, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= MinScore {
			ranked = append(ranked, candidate{name: c, score: s, index: i})
		}
	}

	slices.SortFunc(ranked, func(a, b candidate) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return a.index - b.index
		}
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, c := range ranked[:min(limit, len(ranked))] {
		out = append(out, c.name)
	}

	return out
}
