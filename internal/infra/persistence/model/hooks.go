package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID returns a time-ordered UUID, matching uuid_generate_v7() on the database side.
func newID(id uuid.UUID) (uuid.UUID, error) {
	if id != uuid.Nil {
		return id, nil
	}

	return uuid.NewV7()
}

// BeforeCreate assigns an ID when the caller did not.
func (m *BoostRequestModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)

	return err
}

// BeforeCreate assigns an ID when the caller did not.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)

	return err
}

// BeforeCreate assigns an ID when the caller did not.
func (m *OrderItemModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)

	return err
}

// BeforeCreate assigns an ID when the caller did not.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)

	return err
}

// BeforeCreate assigns an ID when the caller did not.
func (m *CategoryModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)

	return err
}

// BeforeCreate assigns an ID when the caller did not.
func (m *VendorModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)

	return err
}

// BeforeCreate assigns an ID when the caller did not.
func (m *FlashSaleModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)

	return err
}

// BeforeCreate assigns an ID when the caller did not.
func (m *BoostPlanModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID, err = newID(m.ID)

	return err
}
