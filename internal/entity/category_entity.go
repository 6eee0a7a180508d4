package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id        uuid.UUID
	Name      string
	Color     string // palette name ("blue") or hex string ("#3478F6")
	IconName  string // symbol name ("folder") or single emoji
	IsDefault bool
	CreatedAt time.Time
}
