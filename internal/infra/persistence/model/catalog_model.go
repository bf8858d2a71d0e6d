package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
// ParentID is not a foreign key: children may outlive their parent.
type CategoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name      string     `gorm:"type:varchar(100);not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	IsVisible bool       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock         int             `gorm:"not null;default:0"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	VendorID      *uuid.UUID      `gorm:"type:uuid;index"`
	IsBoosted     bool            `gorm:"not null"`
	BoostedUntil  *time.Time
	AverageRating float64 `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount   int     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// VendorModel is the GORM-specific struct for the 'vendors' table.
type VendorModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	StoreName           string    `gorm:"type:varchar(100);not null"`
	IsVerified          bool      `gorm:"not null"`
	SubscriptionEndDate *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
