// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/entity"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/integration/persistence/model"
)

// personRepository implements the adapter.PersonRepository interface.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository instance.
func NewPersonRepository(db *gorm.DB) adapter.PersonRepository {
	return &personRepository{
		db: db,
	}
}

// Create stores a new person and assigns its generated ID.
func (r *personRepository) Create(ctx context.Context, person *entity.Person) error {
	personModel := model.PersonFromEntity(person)
	result := r.db.WithContext(ctx).Create(personModel)
	if result.Error != nil {
		return result.Error
	}
	person.AssignID(personModel.ID)
	return nil
}

// FindByID retrieves a person with its transaction ids.
func (r *personRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	var personModel model.PersonModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&personModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPersonNotFound
		}
		return nil, result.Error
	}

	var transactionIDs []int64
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("person_id = ?", id).
		Pluck("id", &transactionIDs).Error; err != nil {
		return nil, err
	}

	return personModel.ToEntity(transactionIDs)
}

// FindAll retrieves every person ordered by name.
func (r *personRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	var personModels []model.PersonModel
	result := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&personModels)
	if result.Error != nil {
		return nil, result.Error
	}

	var refs []struct {
		ID       int64
		PersonID int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("id", "person_id").
		Find(&refs).Error; err != nil {
		return nil, err
	}
	byPerson := make(map[int64][]int64)
	for _, ref := range refs {
		byPerson[ref.PersonID] = append(byPerson[ref.PersonID], ref.ID)
	}

	people := make([]*entity.Person, len(personModels))
	for i := range personModels {
		person, err := personModels[i].ToEntity(byPerson[personModels[i].ID])
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", personModels[i].ID, err)
		}
		people[i] = person
	}
	return people, nil
}

// ExistsByName checks if another person already uses the name.
func (r *personRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update saves the mutable fields of an existing person.
func (r *personRepository) Update(ctx context.Context, person *entity.Person) error {
	result := r.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id = ?", person.ID()).
		Updates(map[string]interface{}{
			"name":      person.Name().Value(),
			"age":       person.Age().Value(),
			"is_active": person.IsActive(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPersonNotFound
	}
	return nil
}

// Delete removes the person and cascades to its transactions. The cascade
// is applied explicitly so it holds without foreign key enforcement.
func (r *personRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.PersonModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrPersonNotFound
		}
		return nil
	})
}
