// Package entity defines the core business entities for the domain layer.
package entity

import (
	"errors"
	"sort"
	"time"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

// Person is a household member. Transactions are referenced by id only.
type Person struct {
	id             int64
	name           valueobject.PersonName
	age            valueobject.Age
	createdAt      time.Time
	isActive       bool
	transactionIDs map[int64]struct{}
}

// NewPerson builds an active person. An id of 0 means not yet persisted.
func NewPerson(name string, age int, id int64) (*Person, error) {
	personName, err := newPersonName(name)
	if err != nil {
		return nil, err
	}
	personAge, err := newPersonAge(age)
	if err != nil {
		return nil, err
	}

	return &Person{
		id:             id,
		name:           personName,
		age:            personAge,
		createdAt:      time.Now().UTC(),
		isActive:       true,
		transactionIDs: make(map[int64]struct{}),
	}, nil
}

// RestorePerson rebuilds a stored person, keeping its timestamps and state.
func RestorePerson(id int64, name string, age int, createdAt time.Time, isActive bool, transactionIDs []int64) (*Person, error) {
	p, err := NewPerson(name, age, id)
	if err != nil {
		return nil, err
	}
	p.createdAt = createdAt
	p.isActive = isActive
	for _, txID := range transactionIDs {
		p.transactionIDs[txID] = struct{}{}
	}
	return p, nil
}

// ID returns the storage id, 0 when not yet persisted.
func (p *Person) ID() int64 {
	return p.id
}

// Name returns the person name.
func (p *Person) Name() valueobject.PersonName {
	return p.name
}

// Age returns the person age.
func (p *Person) Age() valueobject.Age {
	return p.age
}

// CreatedAt returns the creation time in UTC.
func (p *Person) CreatedAt() time.Time {
	return p.createdAt
}

// IsActive reports whether the person has not been deactivated.
func (p *Person) IsActive() bool {
	return p.isActive
}

// IsMinor reports whether the person is under age.
func (p *Person) IsMinor() bool {
	return p.age.IsMinor()
}

// AssignID sets the storage id of a new person. It has no effect once an id is set.
func (p *Person) AssignID(id int64) {
	if p.id == 0 {
		p.id = id
	}
}

// UpdateName replaces the name of an active person.
func (p *Person) UpdateName(name string) error {
	if err := p.requireActive(); err != nil {
		return err
	}
	personName, err := newPersonName(name)
	if err != nil {
		return err
	}
	p.name = personName
	return nil
}

// UpdateAge replaces the age of an active person.
func (p *Person) UpdateAge(age int) error {
	if err := p.requireActive(); err != nil {
		return err
	}
	personAge, err := newPersonAge(age)
	if err != nil {
		return err
	}
	p.age = personAge
	return nil
}

// Deactivate moves the person to its terminal state.
func (p *Person) Deactivate() error {
	if !p.isActive {
		return domainerror.NewPersonError(
			domainerror.ErrCodePersonAlreadyInactive,
			"person already inactive",
			domainerror.ErrPersonAlreadyInactive,
		)
	}
	p.isActive = false
	return nil
}

// AddTransaction records a transaction reference. Duplicates are ignored.
func (p *Person) AddTransaction(transactionID int64) error {
	if err := p.requireActive(); err != nil {
		return err
	}
	p.transactionIDs[transactionID] = struct{}{}
	return nil
}

// TransactionCount returns the number of referenced transactions.
func (p *Person) TransactionCount() int {
	return len(p.transactionIDs)
}

// TransactionIDs returns the referenced transaction ids in ascending order.
func (p *Person) TransactionIDs() []int64 {
	ids := make([]int64, 0, len(p.transactionIDs))
	for id := range p.transactionIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (p *Person) requireActive() error {
	if !p.isActive {
		return domainerror.NewPersonError(
			domainerror.ErrCodePersonInactive,
			"cannot update an inactive person",
			domainerror.ErrPersonInactive,
		)
	}
	return nil
}

func newPersonName(raw string) (valueobject.PersonName, error) {
	name, err := valueobject.NewPersonName(raw)
	if err != nil {
		return valueobject.PersonName{}, wrapPersonValueError(domainerror.ErrCodeInvalidPersonName, err)
	}
	return name, nil
}

func newPersonAge(raw int) (valueobject.Age, error) {
	age, err := valueobject.NewAge(raw)
	if err != nil {
		return valueobject.Age{}, wrapPersonValueError(domainerror.ErrCodeInvalidPersonAge, err)
	}
	return age, nil
}

func wrapPersonValueError(code domainerror.PersonErrorCode, err error) error {
	message := err.Error()
	var valErr *domainerror.ValueError
	if errors.As(err, &valErr) {
		message = valErr.Message
	}
	return domainerror.NewPersonError(code, message, err)
}
