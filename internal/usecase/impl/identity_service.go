package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type identityService struct {
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	Logger     *slog.Logger
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		vendorRepo: params.VendorRepo,
		logger:     params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveActor maps the roles of a token to the single actor a request runs as.
func (srv *identityService) ResolveActor(ctx context.Context, userID uuid.UUID, roles entity.Roles) (entity.Actor, error) {
	if roles.Contains(entity.RoleAdmin) {
		return entity.Admin{ID: userID}, nil
	}

	if roles.Contains(entity.RoleVendor) {
		vendor, err := srv.vendorRepo.FindByUserID(ctx, userID)
		switch {
		case err == nil:
			return entity.VendorActor{ID: userID, VendorID: vendor.ID}, nil
		case !errors.Is(err, repository.ErrVendorNotFound):
			return nil, errors.Wrap(err, "failed to find vendor by user")
		case !roles.Contains(entity.RoleCustomer):
			srv.log(ctx).Warn("Vendor role without vendor profile", slog.Any("userID", userID))

			return nil, domainerrors.ErrForbidden.WrapMessage("vendor profile not found")
		}
		srv.log(ctx).Debug("Vendor profile missing, acting as customer", slog.Any("userID", userID))
	}

	if roles.Contains(entity.RoleCustomer) {
		return entity.Customer{ID: userID}, nil
	}

	return nil, domainerrors.ErrForbidden.WrapMessage("no recognized role")
}
