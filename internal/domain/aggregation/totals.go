// Package aggregation derives income, expense and balance totals from a
// snapshot of transactions. Totals are always recomputed from the input.
package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/household-expenses/backend/internal/domain/entity"
)

// Totals is the reduction of a set of transactions.
type Totals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// Zero returns totals with every field set to zero.
func Zero() Totals {
	return Totals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
	}
}

// Compute sums every active transaction once. Cancelled transactions are ignored.
func Compute(transactions []*entity.Transaction) Totals {
	totals := Zero()
	for _, tx := range transactions {
		totals = totals.include(tx)
	}
	return totals
}

// Global is Compute over every transaction of every person.
func Global(transactions []*entity.Transaction) Totals {
	return Compute(transactions)
}

// ForPerson computes totals over the transactions of a single person.
func ForPerson(personID int64, transactions []*entity.Transaction) Totals {
	totals := Zero()
	for _, tx := range transactions {
		if tx.PersonID() == personID {
			totals = totals.include(tx)
		}
	}
	return totals
}

// ForCategory computes totals over the transactions of a single category.
func ForCategory(categoryID int64, transactions []*entity.Transaction) Totals {
	totals := Zero()
	for _, tx := range transactions {
		if tx.CategoryID() == categoryID {
			totals = totals.include(tx)
		}
	}
	return totals
}

// ByPerson groups totals by person id. People without active transactions
// are absent from the result.
func ByPerson(transactions []*entity.Transaction) map[int64]Totals {
	return groupBy(transactions, (*entity.Transaction).PersonID)
}

// ByCategory groups totals by category id.
func ByCategory(transactions []*entity.Transaction) map[int64]Totals {
	return groupBy(transactions, (*entity.Transaction).CategoryID)
}

// Lookup returns the totals for id, or Zero when the map has none.
func Lookup(grouped map[int64]Totals, id int64) Totals {
	if totals, ok := grouped[id]; ok {
		return totals
	}
	return Zero()
}

// Sum combines several totals, e.g. per-person rows into a grand total.
func Sum(parts ...Totals) Totals {
	total := Zero()
	for _, p := range parts {
		total.TotalIncome = total.TotalIncome.Add(p.TotalIncome)
		total.TotalExpense = total.TotalExpense.Add(p.TotalExpense)
	}
	total.Balance = total.TotalIncome.Sub(total.TotalExpense)
	return total
}

func groupBy(transactions []*entity.Transaction, key func(*entity.Transaction) int64) map[int64]Totals {
	grouped := make(map[int64]Totals)
	for _, tx := range transactions {
		if !tx.IsActive() {
			continue
		}
		id := key(tx)
		grouped[id] = Lookup(grouped, id).include(tx)
	}
	return grouped
}

func (t Totals) include(tx *entity.Transaction) Totals {
	if !tx.IsActive() {
		return t
	}
	amount := tx.Amount().Amount()
	switch {
	case tx.IsIncome():
		t.TotalIncome = t.TotalIncome.Add(amount)
	case tx.IsExpense():
		t.TotalExpense = t.TotalExpense.Add(amount)
	}
	t.Balance = t.TotalIncome.Sub(t.TotalExpense)
	return t
}
