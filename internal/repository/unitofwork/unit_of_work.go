package unitofwork

import (
	"context"

	"promptly-be/internal/repository/contract"
)

// UnitOfWork is the transaction boundary of the store. Mutations submitted
// between Begin and Commit land in a single commit, so paired operations like
// snapshot-insert plus prompt-delete cannot be observed half-applied.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PromptRepository() contract.PromptRepository
	CategoryRepository() contract.CategoryRepository
	RecycleBinRepository() contract.RecycleBinRepository
}
