package valueobject

import "testing"

func TestNewAge(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		expectErr bool
		minor     bool
	}{
		{name: "newborn", value: 0, minor: true},
		{name: "minor", value: 16, minor: true},
		{name: "last minor year", value: 17, minor: true},
		{name: "adult threshold", value: 18, minor: false},
		{name: "upper bound", value: 150, minor: false},
		{name: "negative", value: -1, expectErr: true},
		{name: "above upper bound", value: 151, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := NewAge(tt.value)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if age.Value() != tt.value {
				t.Errorf("Value = %d, want %d", age.Value(), tt.value)
			}
			if age.IsMinor() != tt.minor {
				t.Errorf("IsMinor = %v, want %v", age.IsMinor(), tt.minor)
			}
			if age.IsAdult() == tt.minor {
				t.Errorf("IsAdult = %v, want %v", age.IsAdult(), !tt.minor)
			}
		})
	}
}
