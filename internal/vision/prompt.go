package vision

import "strings"

// BuildLedgerPrompt composes the fixed instruction set for extracting a
// photographed patient ledger. The rules stated here are also enforced
// downstream after parsing; the model's compliance is never assumed.
func BuildLedgerPrompt() string {
	parts := []string{
		"You are reading a photographed page from a handwritten clinic patient ledger.",
		"Extract every patient row from the table and return ONLY valid JSON, nothing else.",
		"The output must be a single JSON object with this exact shape:",
		`{"visit_date": string, "patients": [{"name": string, "file_number": string, "gender": string, "nationality": string, "procedure": string, "amount": string}]}`,
		"Read the visit date once from the page header or date stamp and echo it onto the object; it applies to every patient row on the page.",
		"Normalize 'gender' to the full words \"Male\" or \"Female\", never abbreviations.",
		"If one cell lists multiple procedures, join them into one comma-separated string.",
		"If a field is missing or unreadable, leave it blank or null. Never fabricate a value.",
		"Do not wrap the JSON in code fences or add any commentary.",
	}
	return strings.Join(parts, " ")
}
