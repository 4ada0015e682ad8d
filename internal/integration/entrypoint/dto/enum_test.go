package dto

import (
	"testing"

	"github.com/household-expenses/backend/internal/domain/valueobject"
)

func TestTransactionTypeNames(t *testing.T) {
	for _, tt := range valueobject.TransactionTypes() {
		if got := ParseTransactionType(FormatTransactionType(tt)); got != tt {
			t.Errorf("round trip of %d gave %d", tt, got)
		}
	}
	if ParseTransactionType(" INCOME ") != valueobject.TransactionTypeIncome {
		t.Error("parsing must ignore case and surrounding space")
	}
	if ParseTransactionType("transfer").Valid() {
		t.Error("unknown names must map to an invalid type")
	}
}

func TestCategoryPurposeNames(t *testing.T) {
	for _, p := range valueobject.CategoryPurposes() {
		if got := ParseCategoryPurpose(FormatCategoryPurpose(p)); got != p {
			t.Errorf("round trip of %d gave %d", p, got)
		}
	}
	if ParseCategoryPurpose("").Valid() {
		t.Error("empty name must map to an invalid purpose")
	}
}
