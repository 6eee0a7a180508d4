// Package tagcloud derives the distinct tag set and per-tag usage counts from
// a prompt collection, for building the tag filter UI.
package tagcloud

import (
	"sort"

	"promptly-be/internal/entity"
)

// TagCount is one tag with the number of prompts carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Aggregate counts tags by exact string match. Counting is deliberately
// stricter than filtering, which matches case-insensitive substrings: the
// counts reflect the literal tag values shown in the UI. Output is sorted
// lexicographically by tag.
func Aggregate(prompts []*entity.Prompt) []TagCount {
	counts := make(map[string]int)
	for _, prompt := range prompts {
		for _, tag := range prompt.Tags {
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		result = append(result, TagCount{Tag: tag, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Tag < result[j].Tag
	})

	return result
}
