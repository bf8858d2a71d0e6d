package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_ResolveActor(t *testing.T) {
	userID := uuid.New()
	vendorID := uuid.New()

	tests := []struct {
		name      string
		roles     entity.Roles
		setup     func(vendorRepo *mockRepo.MockVendorRepository)
		wantActor entity.Actor
		wantErr   error
	}{
		{
			name:      "admin wins over vendor",
			roles:     entity.Roles{entity.RoleVendor, entity.RoleAdmin},
			wantActor: entity.Admin{ID: userID},
		},
		{
			name:  "vendor linked by user id",
			roles: entity.Roles{entity.RoleCustomer, entity.RoleVendor},
			setup: func(vendorRepo *mockRepo.MockVendorRepository) {
				vendorRepo.EXPECT().FindByUserID(context.Background(), userID).Return(&entity.Vendor{ID: vendorID, UserID: userID}, nil)
			},
			wantActor: entity.VendorActor{ID: userID, VendorID: vendorID},
		},
		{
			name:  "vendor without profile falls back to customer",
			roles: entity.Roles{entity.RoleVendor, entity.RoleCustomer},
			setup: func(vendorRepo *mockRepo.MockVendorRepository) {
				vendorRepo.EXPECT().FindByUserID(context.Background(), userID).Return(nil, repository.ErrVendorNotFound)
			},
			wantActor: entity.Customer{ID: userID},
		},
		{
			name:  "vendor-only without profile is forbidden",
			roles: entity.Roles{entity.RoleVendor},
			setup: func(vendorRepo *mockRepo.MockVendorRepository) {
				vendorRepo.EXPECT().FindByUserID(context.Background(), userID).Return(nil, repository.ErrVendorNotFound)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:      "customer",
			roles:     entity.Roles{entity.RoleCustomer},
			wantActor: entity.Customer{ID: userID},
		},
		{
			name:    "no roles",
			roles:   nil,
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendorRepo := mockRepo.NewMockVendorRepository(t)
			if tt.setup != nil {
				tt.setup(vendorRepo)
			}
			srv := NewIdentityService(IdentityServiceParams{VendorRepo: vendorRepo, Logger: newDiscardLogger()})

			actor, err := srv.ResolveActor(context.Background(), userID, tt.roles)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, actor)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantActor, actor)
		})
	}
}

func TestIdentityService_ResolveActor_RepositoryError(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	userID := uuid.New()
	vendorRepo.EXPECT().FindByUserID(context.Background(), userID).Return(nil, errors.New("timeout"))
	srv := NewIdentityService(IdentityServiceParams{VendorRepo: vendorRepo, Logger: newDiscardLogger()})

	actor, err := srv.ResolveActor(context.Background(), userID, entity.Roles{entity.RoleVendor, entity.RoleCustomer})
	require.Error(t, err)
	assert.Nil(t, actor)
	assert.Contains(t, err.Error(), "timeout")
}
