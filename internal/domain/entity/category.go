package entity

import (
	"errors"
	"time"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/event"
	"github.com/household-expenses/backend/internal/domain/specification"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// Category groups transactions and restricts which transaction types it accepts.
type Category struct {
	id          int64
	description valueobject.CategoryDescription
	purpose     valueobject.CategoryPurpose
	createdAt   time.Time
	isActive    bool
}

// NewCategory builds an active category. A CategoryCreated event is returned
// only when id is 0.
func NewCategory(description string, purpose valueobject.CategoryPurpose, id int64) (*Category, []event.Event, error) {
	categoryDescription, err := newCategoryDescription(description)
	if err != nil {
		return nil, nil, err
	}
	if !specification.IsValidPurpose(purpose) {
		return nil, nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryPurpose,
			"invalid category purpose",
			domainerror.ErrInvalidCategory,
		)
	}

	category := &Category{
		id:          id,
		description: categoryDescription,
		purpose:     purpose,
		createdAt:   time.Now().UTC(),
		isActive:    true,
	}

	var events []event.Event
	if id == 0 {
		events = append(events, event.NewCategoryCreated(id, categoryDescription.Value(), purpose))
	}
	return category, events, nil
}

// RestoreCategory rebuilds a stored category, keeping its timestamps and state.
func RestoreCategory(id int64, description string, purpose valueobject.CategoryPurpose, createdAt time.Time, isActive bool) (*Category, error) {
	category, _, err := NewCategory(description, purpose, id)
	if err != nil {
		return nil, err
	}
	category.createdAt = createdAt
	category.isActive = isActive
	return category, nil
}

// ID returns the storage id, 0 when not yet persisted.
func (c *Category) ID() int64 {
	return c.id
}

// Description returns the category description.
func (c *Category) Description() valueobject.CategoryDescription {
	return c.description
}

// Purpose returns which transaction types the category accepts.
func (c *Category) Purpose() valueobject.CategoryPurpose {
	return c.purpose
}

// CreatedAt returns the creation time in UTC.
func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

// IsActive reports whether the category has not been deactivated.
func (c *Category) IsActive() bool {
	return c.isActive
}

// AssignID sets the storage id of a new category. It has no effect once an id is set.
func (c *Category) AssignID(id int64) {
	if c.id == 0 {
		c.id = id
	}
}

// CanBeUsedWith reports whether the category accepts the transaction type.
func (c *Category) CanBeUsedWith(t valueobject.TransactionType) bool {
	return specification.CanBeUsedWithTransactionType(c.purpose, t)
}

// UpdateDescription replaces the description of an active category.
func (c *Category) UpdateDescription(description string) error {
	if !c.isActive {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInactive,
			"cannot update an inactive category",
			domainerror.ErrCategoryInactive,
		)
	}
	categoryDescription, err := newCategoryDescription(description)
	if err != nil {
		return err
	}
	c.description = categoryDescription
	return nil
}

// Deactivate moves the category to its terminal state.
func (c *Category) Deactivate() error {
	if !c.isActive {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryAlreadyInactive,
			"category already inactive",
			domainerror.ErrCategoryAlreadyInactive,
		)
	}
	c.isActive = false
	return nil
}

func newCategoryDescription(raw string) (valueobject.CategoryDescription, error) {
	description, err := valueobject.NewCategoryDescription(raw)
	if err != nil {
		message := err.Error()
		var valErr *domainerror.ValueError
		if errors.As(err, &valErr) {
			message = valErr.Message
		}
		return valueobject.CategoryDescription{}, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryDescription,
			message,
			err,
		)
	}
	return description, nil
}
