// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/household-expenses/backend/internal/domain/entity"
)

// PersonModel represents the people table in the database.
type PersonModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(200);not null;index"`
	Age       int       `gorm:"not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationships (not loaded by default)
	Transactions []TransactionModel `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the PersonModel.
func (PersonModel) TableName() string {
	return "people"
}

// ToEntity converts a PersonModel to a domain Person aggregate.
func (m *PersonModel) ToEntity(transactionIDs []int64) (*entity.Person, error) {
	return entity.RestorePerson(m.ID, m.Name, m.Age, m.CreatedAt, m.IsActive, transactionIDs)
}

// PersonFromEntity creates a PersonModel from a domain Person aggregate.
func PersonFromEntity(person *entity.Person) *PersonModel {
	return &PersonModel{
		ID:        person.ID(),
		Name:      person.Name().Value(),
		Age:       person.Age().Value(),
		IsActive:  person.IsActive(),
		CreatedAt: person.CreatedAt(),
	}
}
