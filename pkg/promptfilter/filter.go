// Package promptfilter computes the visible prompt list from the full
// collection and the active filter criteria. It is pure: no store access,
// no mutation of the input slice.
package promptfilter

import (
	"sort"
	"strings"

	"promptly-be/internal/entity"

	"github.com/google/uuid"
)

// Criteria describes the active filters. Zero value means "show everything".
type Criteria struct {
	CategoryId    *uuid.UUID
	FavoritesOnly bool
	SelectedTags  []string
	SearchText    string
}

// Apply narrows the prompt list stage by stage. All stages are conjunctive;
// the result is sorted by creation time, most recent first.
func Apply(prompts []*entity.Prompt, criteria Criteria) []*entity.Prompt {
	filtered := make([]*entity.Prompt, 0, len(prompts))

	search := strings.ToLower(strings.TrimSpace(criteria.SearchText))

	for _, prompt := range prompts {
		if criteria.CategoryId != nil && !matchesCategory(prompt, *criteria.CategoryId) {
			continue
		}
		if criteria.FavoritesOnly && !prompt.IsFavorite {
			continue
		}
		if len(criteria.SelectedTags) > 0 && !matchesTags(prompt, criteria.SelectedTags) {
			continue
		}
		if search != "" && !matchesSearch(prompt, search) {
			continue
		}
		filtered = append(filtered, prompt)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered
}

// matchesCategory is an identity match. Uncategorized prompts never match a
// category filter.
func matchesCategory(prompt *entity.Prompt, categoryId uuid.UUID) bool {
	return prompt.CategoryId != nil && *prompt.CategoryId == categoryId
}

// matchesTags requires every selected tag to appear as a case-insensitive
// substring of at least one of the prompt's own tags.
func matchesTags(prompt *entity.Prompt, selected []string) bool {
	for _, want := range selected {
		wantLower := strings.ToLower(want)
		found := false
		for _, tag := range prompt.Tags {
			if strings.Contains(strings.ToLower(tag), wantLower) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesSearch checks title, description and the space-joined tag list.
func matchesSearch(prompt *entity.Prompt, search string) bool {
	if strings.Contains(strings.ToLower(prompt.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(prompt.Description), search) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(prompt.Tags, " ")), search)
}
