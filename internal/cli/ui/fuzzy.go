package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// DefaultMaxDistance is the default maximum edit distance to consider for fuzzy matching
	DefaultMaxDistance = 3
	// DefaultMaxSuggestions is the default maximum number of suggestions to return
	DefaultMaxSuggestions = 3
)

// FindSimilar returns up to DefaultMaxSuggestions candidates within
// DefaultMaxDistance edits of target, closest first. Matching ignores case.
func FindSimilar(target string, candidates []string) []string {
	type match struct {
		value    string
		distance int
	}

	var matches []match
	for _, candidate := range candidates {
		dist := LevenshteinDistance(strings.ToLower(target), strings.ToLower(candidate))
		if dist <= DefaultMaxDistance {
			matches = append(matches, match{candidate, dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	result := make([]string, 0, DefaultMaxSuggestions)
	for i := 0; i < len(matches) && i < DefaultMaxSuggestions; i++ {
		result = append(result, matches[i].value)
	}
	return result
}

// LevenshteinDistance calculates the minimum number of single-byte edits
// turning s1 into s2
func LevenshteinDistance(s1, s2 string) int {
	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// SimilarSources suggests files next to path that carry ext and whose names
// resemble path's base name
func SimilarSources(path, ext string) []string {
	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var candidates []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ext {
			candidates = append(candidates, e.Name())
		}
	}

	suggestions := FindSimilar(filepath.Base(path), candidates)
	for i, s := range suggestions {
		if dir != "." {
			suggestions[i] = filepath.Join(dir, s)
		}
	}
	return suggestions
}
