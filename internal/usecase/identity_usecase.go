package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityUsecase turns validated token claims into an actor.
type IdentityUsecase interface {
	// ResolveActor picks the actor for a user. Admin takes precedence over vendor,
	// and vendor over customer. Vendors are linked through their user id.
	ResolveActor(ctx context.Context, userID uuid.UUID, roles entity.Roles) (entity.Actor, error)
}
