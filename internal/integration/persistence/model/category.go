// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/household-expenses/backend/internal/domain/entity"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"type:varchar(400);not null"`
	Purpose     int16     `gorm:"type:smallint;not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	// Relationships (not loaded by default)
	Transactions []TransactionModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category aggregate.
func (m *CategoryModel) ToEntity() (*entity.Category, error) {
	return entity.RestoreCategory(
		m.ID,
		m.Description,
		valueobject.CategoryPurpose(m.Purpose),
		m.CreatedAt,
		m.IsActive,
	)
}

// CategoryFromEntity creates a CategoryModel from a domain Category aggregate.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:          category.ID(),
		Description: category.Description().Value(),
		Purpose:     int16(category.Purpose()),
		IsActive:    category.IsActive(),
		CreatedAt:   category.CreatedAt(),
	}
}
