package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlashSaleModel is the GORM-specific struct for the 'flash_sales' table.
type FlashSaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DiscountType  string          `gorm:"type:varchar(20);not null"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartDate     time.Time       `gorm:"not null"`
	EndDate       time.Time       `gorm:"not null"`
	IsActive      bool            `gorm:"not null;index"`
	StockCap      *int
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FlashSaleModel) TableName() string {
	return "flash_sales"
}

// BoostPlanModel is the GORM-specific struct for the 'boost_plans' table.
type BoostPlanModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name         string          `gorm:"type:varchar(100);not null"`
	DurationDays int             `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsActive     bool            `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (BoostPlanModel) TableName() string {
	return "boost_plans"
}

// BoostRequestModel is the GORM-specific struct for the 'boost_requests' table.
// DurationDays and Price are copied from the plan when the request is made.
type BoostRequestModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlanID       uuid.UUID       `gorm:"type:uuid;not null"`
	DurationDays int             `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (BoostRequestModel) TableName() string {
	return "boost_requests"
}
