package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDs returns the orders among ids.
func (repo *orderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Order, error) {
	if len(ids) == 0 {
		return []*entity.Order{}, nil
	}

	return repo.find(repo.db.WithContext(ctx).Where("id IN ?", ids), repository.OrderQuery{}, "failed to find orders by IDs")
}

// FindByUser returns the orders placed by a customer.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, query repository.OrderQuery) ([]*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx).Where("user_id = ?", userID), query, "failed to find orders by user")
}

// FindByProductIDs returns the distinct orders containing at least one of the products.
func (repo *orderRepository) FindByProductIDs(ctx context.Context, productIDs []uuid.UUID, query repository.OrderQuery) ([]*entity.Order, error) {
	if len(productIDs) == 0 {
		return []*entity.Order{}, nil
	}

	itemOrders := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("order_id").
		Where("product_id IN ?", productIDs)

	return repo.find(repo.db.WithContext(ctx).Where("id IN (?)", itemOrders), query, "failed to find orders by products")
}

// FindAll returns every order.
func (repo *orderRepository) FindAll(ctx context.Context, query repository.OrderQuery) ([]*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx), query, "failed to find orders")
}

func (repo *orderRepository) find(tx *gorm.DB, query repository.OrderQuery, errMsg string) ([]*entity.Order, error) {
	if query.Status != "" {
		tx = tx.Where("status = ?", string(query.Status))
	}

	var orderModels []*model.OrderModel
	if err := tx.
		Order("order_date DESC").
		Order("id ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindItemsByOrderIDs returns the items of the given orders.
func (repo *orderRepository) FindItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]*entity.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []*entity.OrderItem{}, nil
	}

	return repo.findItems(ctx, "order_id IN ?", orderIDs, "failed to find order items by orders")
}

// FindItemsByProductIDs returns every item referencing one of the products.
func (repo *orderRepository) FindItemsByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]*entity.OrderItem, error) {
	if len(productIDs) == 0 {
		return []*entity.OrderItem{}, nil
	}

	return repo.findItems(ctx, "product_id IN ?", productIDs, "failed to find order items by products")
}

func (repo *orderRepository) findItems(ctx context.Context, cond string, ids []uuid.UUID, errMsg string) ([]*entity.OrderItem, error) {
	var itemModels []*model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where(cond, ids).
		Order("order_id ASC").
		Order("product_name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	items := make([]*entity.OrderItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toOrderItemDomain(itemM))
	}

	return items, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:          data.ID,
		UserID:      data.UserID,
		TotalAmount: data.TotalAmount,
		Status:      entity.OrderStatus(data.Status),
		OrderDate:   data.OrderDate,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:          data.ID,
		UserID:      data.UserID,
		TotalAmount: data.TotalAmount,
		Status:      string(data.Status),
		OrderDate:   data.OrderDate,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:              data.ID,
		OrderID:         data.OrderID,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		Quantity:        data.Quantity,
		PriceAtPurchase: data.PriceAtPurchase,
	}
}

// fromOrderItemDomain converts a domain OrderItem entity to a GORM OrderItemModel.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		ProductID:       data.ProductID,
		ProductName:     data.ProductName,
		Quantity:        data.Quantity,
		PriceAtPurchase: data.PriceAtPurchase,
	}
}
