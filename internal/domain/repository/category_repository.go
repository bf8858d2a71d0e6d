// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CategoryRepository defines read access to categories.
type CategoryRepository interface {
	// FindAll returns every category, including hidden and orphaned rows.
	FindAll(ctx context.Context) ([]*entity.Category, error)
}
