package valueobject

import (
	"fmt"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

const (
	// MinAge is the lowest accepted age.
	MinAge = 0
	// MaxAge is the highest accepted age.
	MaxAge = 150
	// MinorAge is the age from which a person is an adult.
	MinorAge = 18
)

// Age is a person's age in whole years.
type Age struct {
	value int
}

// NewAge validates and builds an Age.
func NewAge(value int) (Age, error) {
	if value < MinAge || value > MaxAge {
		return Age{}, domainerror.NewValueError(
			domainerror.ErrCodeAgeOutOfRange,
			"age",
			fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge),
			nil,
		)
	}
	return Age{value: value}, nil
}

// Value returns the age in years.
func (a Age) Value() int {
	return a.value
}

// IsMinor reports whether the age is below MinorAge.
func (a Age) IsMinor() bool {
	return a.value < MinorAge
}

// IsAdult is the negation of IsMinor.
func (a Age) IsAdult() bool {
	return !a.IsMinor()
}
