package event

import "github.com/household-expenses/backend/internal/domain/valueobject"

// CategoryCreatedName identifies CategoryCreated events.
const CategoryCreatedName = "category.created"

// CategoryCreated is recorded when a new category is built for the first time.
type CategoryCreated struct {
	Base
	CategoryID  int64
	Description string
	Purpose     valueobject.CategoryPurpose
}

// NewCategoryCreated creates a CategoryCreated event.
func NewCategoryCreated(categoryID int64, description string, purpose valueobject.CategoryPurpose) CategoryCreated {
	return CategoryCreated{
		Base:        NewBase(),
		CategoryID:  categoryID,
		Description: description,
		Purpose:     purpose,
	}
}

// Name implements Event.
func (CategoryCreated) Name() string {
	return CategoryCreatedName
}

func (e CategoryCreated) withAggregateID(id int64) Event {
	if e.CategoryID == 0 {
		e.CategoryID = id
	}
	return e
}
