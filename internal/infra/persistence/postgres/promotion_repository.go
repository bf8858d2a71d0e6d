package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{
		db: db,
	}
}

// FindActiveFlashSales returns every flash sale flagged active. The time window is
// not applied here; the resolver evaluates it against the request instant.
func (repo *promotionRepository) FindActiveFlashSales(ctx context.Context) ([]*entity.FlashSale, error) {
	var saleModels []*model.FlashSaleModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("start_date ASC").
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active flash sales")
	}

	return toFlashSalesDomain(saleModels), nil
}

// FindFlashSalesByProduct returns all flash sales of a product.
func (repo *promotionRepository) FindFlashSalesByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.FlashSale, error) {
	var saleModels []*model.FlashSaleModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("start_date ASC").
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find flash sales by product")
	}

	return toFlashSalesDomain(saleModels), nil
}

// FindActiveBoostPlans returns purchasable plans ordered by duration.
func (repo *promotionRepository) FindActiveBoostPlans(ctx context.Context) ([]*entity.BoostPlan, error) {
	var planModels []*model.BoostPlanModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("duration_days ASC").
		Order("name ASC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find boost plans")
	}

	plans := make([]*entity.BoostPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toBoostPlanDomain(planM))
	}

	return plans, nil
}

// FindBoostPlanByID retrieves a plan by its unique ID.
func (repo *promotionRepository) FindBoostPlanByID(ctx context.Context, id uuid.UUID) (*entity.BoostPlan, error) {
	var planM model.BoostPlanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoostPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find boost plan by ID")
	}

	return toBoostPlanDomain(&planM), nil
}

// CreateBoostRequest persists a new boost request.
func (repo *promotionRepository) CreateBoostRequest(ctx context.Context, request *entity.BoostRequest) error {
	requestM := fromBoostRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product, vendor or plan reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required boost request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create boost request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindBoostRequestByID retrieves a boost request by its unique ID.
func (repo *promotionRepository) FindBoostRequestByID(ctx context.Context, id uuid.UUID) (*entity.BoostRequest, error) {
	var requestM model.BoostRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoostRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find boost request by ID")
	}

	return toBoostRequestDomain(&requestM), nil
}

// ResolveBoostRequest moves a pending request to status. The update only matches
// pending rows, so of two concurrent resolutions exactly one succeeds.
func (repo *promotionRepository) ResolveBoostRequest(ctx context.Context, id uuid.UUID, status entity.BoostStatus, resolvedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BoostRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.BoostStatusPending)).
		Updates(map[string]any{
			"status":      string(status),
			"resolved_at": resolvedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to resolve boost request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBoostRequestNotPending
	}

	return nil
}

// --- Mapper Functions ---

func toFlashSalesDomain(saleModels []*model.FlashSaleModel) []*entity.FlashSale {
	sales := make([]*entity.FlashSale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toFlashSaleDomain(saleM))
	}

	return sales
}

// toFlashSaleDomain converts a GORM FlashSaleModel to a domain FlashSale entity.
func toFlashSaleDomain(data *model.FlashSaleModel) *entity.FlashSale {
	if data == nil {
		return nil
	}

	return &entity.FlashSale{
		ID:            data.ID,
		ProductID:     data.ProductID,
		DiscountType:  entity.DiscountType(data.DiscountType),
		DiscountValue: data.DiscountValue,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		IsActive:      data.IsActive,
		StockCap:      data.StockCap,
		CreatedAt:     data.CreatedAt,
	}
}

// fromFlashSaleDomain converts a domain FlashSale entity to a GORM FlashSaleModel.
func fromFlashSaleDomain(data *entity.FlashSale) *model.FlashSaleModel {
	if data == nil {
		return nil
	}

	return &model.FlashSaleModel{
		ID:            data.ID,
		ProductID:     data.ProductID,
		DiscountType:  string(data.DiscountType),
		DiscountValue: data.DiscountValue,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		IsActive:      data.IsActive,
		StockCap:      data.StockCap,
		CreatedAt:     data.CreatedAt,
	}
}

// toBoostPlanDomain converts a GORM BoostPlanModel to a domain BoostPlan entity.
func toBoostPlanDomain(data *model.BoostPlanModel) *entity.BoostPlan {
	if data == nil {
		return nil
	}

	return &entity.BoostPlan{
		ID:           data.ID,
		Name:         data.Name,
		DurationDays: data.DurationDays,
		Price:        data.Price,
		IsActive:     data.IsActive,
	}
}

// fromBoostPlanDomain converts a domain BoostPlan entity to a GORM BoostPlanModel.
func fromBoostPlanDomain(data *entity.BoostPlan) *model.BoostPlanModel {
	if data == nil {
		return nil
	}

	return &model.BoostPlanModel{
		ID:           data.ID,
		Name:         data.Name,
		DurationDays: data.DurationDays,
		Price:        data.Price,
		IsActive:     data.IsActive,
	}
}

// toBoostRequestDomain converts a GORM BoostRequestModel to a domain BoostRequest entity.
func toBoostRequestDomain(data *model.BoostRequestModel) *entity.BoostRequest {
	if data == nil {
		return nil
	}

	return &entity.BoostRequest{
		ID:           data.ID,
		ProductID:    data.ProductID,
		VendorID:     data.VendorID,
		PlanID:       data.PlanID,
		DurationDays: data.DurationDays,
		Price:        data.Price,
		Status:       entity.BoostStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		ResolvedAt:   data.ResolvedAt,
	}
}

// fromBoostRequestDomain converts a domain BoostRequest entity to a GORM BoostRequestModel.
func fromBoostRequestDomain(data *entity.BoostRequest) *model.BoostRequestModel {
	if data == nil {
		return nil
	}

	return &model.BoostRequestModel{
		ID:           data.ID,
		ProductID:    data.ProductID,
		VendorID:     data.VendorID,
		PlanID:       data.PlanID,
		DurationDays: data.DurationDays,
		Price:        data.Price,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		ResolvedAt:   data.ResolvedAt,
	}
}
