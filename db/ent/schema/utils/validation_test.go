package utils

import "testing"

func TestEnumValidator(t *testing.T) {
	validate := EnumValidator("Cash", "Insurance")

	if err := validate("Cash"); err != nil {
		t.Errorf("Cash: %v", err)
	}
	if err := validate("Insurance"); err != nil {
		t.Errorf("Insurance: %v", err)
	}
	if err := validate("cash"); err == nil {
		t.Error("matching is case-sensitive; want error for \"cash\"")
	}
	if err := validate(""); err == nil {
		t.Error("want error for empty value when not allowed")
	}
}
