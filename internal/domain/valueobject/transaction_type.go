package valueobject

// TransactionType is the closed set of transaction kinds. The zero value is invalid.
type TransactionType uint8

const (
	TransactionTypeExpense TransactionType = iota + 1
	TransactionTypeIncome
)

// TransactionTypes lists every valid transaction type.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeExpense, TransactionTypeIncome}
}

// Valid reports whether t is a member of the enum.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}
