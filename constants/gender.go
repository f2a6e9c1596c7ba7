package constants

import "strings"

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

var allGenders = []Gender{Male, Female, Other}

func Genders() []string {
	result := make([]string, len(allGenders))
	for i, g := range allGenders {
		result[i] = string(g)
	}
	return result
}

// CanonicalizeGender maps common OCR spellings onto the canonical full words.
// Unrecognized input is returned unchanged so a human can fix it in review.
func CanonicalizeGender(input string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	switch normalized {
	case "m", "male":
		return string(Male), true
	case "f", "female":
		return string(Female), true
	case "o", "other":
		return string(Other), true
	}
	return input, false
}
