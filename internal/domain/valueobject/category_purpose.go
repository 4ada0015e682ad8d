package valueobject

// CategoryPurpose declares which transaction types a category accepts. The zero value is invalid.
type CategoryPurpose uint8

const (
	CategoryPurposeExpense CategoryPurpose = iota + 1
	CategoryPurposeIncome
	CategoryPurposeBoth
)

// CategoryPurposes lists every valid purpose.
func CategoryPurposes() []CategoryPurpose {
	return []CategoryPurpose{CategoryPurposeExpense, CategoryPurposeIncome, CategoryPurposeBoth}
}

// Valid reports whether p is a member of the enum.
func (p CategoryPurpose) Valid() bool {
	switch p {
	case CategoryPurposeExpense, CategoryPurposeIncome, CategoryPurposeBoth:
		return true
	default:
		return false
	}
}
