package utils

import "fmt"

// EnumValidator restricts a string column to a fixed value set. Used for the
// record enums (patient_type, payment_type, source) where the column stays a
// plain string so review-time edits fail loudly instead of corrupting the set.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not in the allowed set", s)
	}
}
