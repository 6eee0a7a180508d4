// FILE: internal/seed/seed.go
package seed

import (
	"context"
	"time"

	"promptly-be/internal/entity"
	"promptly-be/internal/repository/unitofwork"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

type defaultCategory struct {
	name     string
	color    string
	iconName string
}

// The starter categories every fresh installation gets.
var defaultCategories = []defaultCategory{
	{name: "Writing", color: "blue", iconName: "pencil"},
	{name: "Code", color: "green", iconName: "chevron.left.forwardslash.chevron.right"},
	{name: "Marketing", color: "orange", iconName: "megaphone"},
	{name: "Creative", color: "pink", iconName: "paintbrush"},
	{name: "Business", color: "red", iconName: "briefcase"},
	{name: "Other", color: "gray", iconName: "folder"},
}

// Run installs the default categories and a couple of sample prompts. It is
// idempotent: a store that already has categories is left untouched.
func Run(ctx context.Context, uowFactory unitofwork.RepositoryFactory) error {
	uow := uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CategoryRepository().Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		color.Yellow("Seed skipped: %d categories already present", existing)
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	now := time.Now()
	byName := make(map[string]uuid.UUID, len(defaultCategories))
	for _, dc := range defaultCategories {
		category := entity.Category{
			Id:        uuid.New(),
			Name:      dc.name,
			Color:     dc.color,
			IconName:  dc.iconName,
			IsDefault: true,
			CreatedAt: now,
		}
		if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
			return err
		}
		byName[dc.name] = category.Id
		now = now.Add(time.Millisecond) // keep creation order stable
	}

	samples := samplePrompts(byName, now)
	for i := range samples {
		if err := uow.PromptRepository().Create(ctx, &samples[i]); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	color.Green("Seeded %d categories and %d sample prompts", len(defaultCategories), len(samples))
	return nil
}

func samplePrompts(categories map[string]uuid.UUID, base time.Time) []entity.Prompt {
	writing := categories["Writing"]
	code := categories["Code"]

	return []entity.Prompt{
		{
			Id:          uuid.New(),
			Title:       "Email Summary",
			Description: "Condense a long email thread into action items",
			Body:        "Summarize the following email thread in {{tone}} tone. List every action item with its owner.\n\n{{thread}}",
			Tags:        []string{"email", "summary", "office"},
			CategoryId:  &writing,
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			Id:          uuid.New(),
			Title:       "Code Review Checklist",
			Description: "Structured review of a diff",
			Body:        "Review this diff for correctness, naming and test coverage:\n\n<diff>{{diff}}</diff>",
			Tags:        []string{"code", "review"},
			CategoryId:  &code,
			IsFavorite:  true,
			CreatedAt:   base.Add(time.Millisecond),
			UpdatedAt:   base.Add(time.Millisecond),
		},
	}
}
