package aggregation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-expenses/backend/internal/domain/entity"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

func restore(t *testing.T, id, personID, categoryID int64, amount string, txType valueobject.TransactionType, active bool) *entity.Transaction {
	t.Helper()
	tx, err := entity.RestoreTransaction(entity.RestoreTransactionParams{
		ID:          id,
		Amount:      decimal.RequireFromString(amount),
		Currency:    valueobject.DefaultCurrency,
		Description: "entry",
		Type:        txType,
		CategoryID:  categoryID,
		PersonID:    personID,
		CreatedAt:   time.Now().UTC(),
		IsActive:    active,
	})
	if err != nil {
		t.Fatalf("restore transaction: %v", err)
	}
	return tx
}

func householdSnapshot(t *testing.T) []*entity.Transaction {
	return []*entity.Transaction{
		restore(t, 1, 1, 10, "4500", valueobject.TransactionTypeIncome, true),
		restore(t, 2, 1, 20, "150.50", valueobject.TransactionTypeExpense, true),
		restore(t, 3, 1, 20, "35.00", valueobject.TransactionTypeExpense, true),
		restore(t, 4, 2, 20, "80.00", valueobject.TransactionTypeExpense, true),
		restore(t, 5, 2, 10, "999.99", valueobject.TransactionTypeIncome, false),
	}
}

func assertTotals(t *testing.T, got Totals, income, expense, balance string) {
	t.Helper()
	if !got.TotalIncome.Equal(decimal.RequireFromString(income)) {
		t.Errorf("TotalIncome = %s, want %s", got.TotalIncome, income)
	}
	if !got.TotalExpense.Equal(decimal.RequireFromString(expense)) {
		t.Errorf("TotalExpense = %s, want %s", got.TotalExpense, expense)
	}
	if !got.Balance.Equal(decimal.RequireFromString(balance)) {
		t.Errorf("Balance = %s, want %s", got.Balance, balance)
	}
}

func TestForPerson(t *testing.T) {
	snapshot := householdSnapshot(t)

	assertTotals(t, ForPerson(1, snapshot), "4500", "185.50", "4314.50")
	assertTotals(t, ForPerson(2, snapshot), "0", "80", "-80")
	assertTotals(t, ForPerson(99, snapshot), "0", "0", "0")
}

func TestForCategory(t *testing.T) {
	snapshot := householdSnapshot(t)

	assertTotals(t, ForCategory(10, snapshot), "4500", "0", "4500")
	assertTotals(t, ForCategory(20, snapshot), "0", "265.50", "-265.50")
}

func TestGlobal(t *testing.T) {
	assertTotals(t, Global(householdSnapshot(t)), "4500", "265.50", "4234.50")
	assertTotals(t, Global(nil), "0", "0", "0")
}

func TestByPersonAndByCategory(t *testing.T) {
	snapshot := householdSnapshot(t)

	people := ByPerson(snapshot)
	if len(people) != 2 {
		t.Fatalf("ByPerson groups = %d, want 2", len(people))
	}
	assertTotals(t, Lookup(people, 1), "4500", "185.50", "4314.50")
	assertTotals(t, Lookup(people, 2), "0", "80", "-80")
	assertTotals(t, Lookup(people, 3), "0", "0", "0")

	categories := ByCategory(snapshot)
	assertTotals(t, Lookup(categories, 10), "4500", "0", "4500")
	assertTotals(t, Lookup(categories, 20), "0", "265.50", "-265.50")

	assertTotals(t, Sum(Lookup(people, 1), Lookup(people, 2)), "4500", "265.50", "4234.50")
}

func TestCompute_OrderIndependent(t *testing.T) {
	snapshot := householdSnapshot(t)
	expected := Compute(snapshot)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]*entity.Transaction, len(snapshot))
		copy(shuffled, snapshot)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Compute(shuffled)
		if !got.TotalIncome.Equal(expected.TotalIncome) ||
			!got.TotalExpense.Equal(expected.TotalExpense) ||
			!got.Balance.Equal(expected.Balance) {
			t.Fatalf("permutation %d changed totals: %+v vs %+v", i, got, expected)
		}
	}
}

func TestCompute_DuplicatesAreNotMerged(t *testing.T) {
	tx := restore(t, 1, 1, 1, "10.00", valueobject.TransactionTypeExpense, true)

	assertTotals(t, Compute([]*entity.Transaction{tx, tx}), "0", "20", "-20")
}
