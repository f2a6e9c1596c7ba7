package vision

// BuildLedgerJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We use it locally to validate the model's output shape before
// any field access; a document without an array-typed 'patients' is rejected.
func BuildLedgerJSONSchema() map[string]any {
	patientProps := map[string]any{
		"name":        map[string]any{"type": []string{"string", "null"}},
		"file_number": map[string]any{"type": []string{"string", "number", "null"}},
		"gender":      map[string]any{"type": []string{"string", "null"}},
		"nationality": map[string]any{"type": []string{"string", "null"}},
		"procedure":   map[string]any{"type": []string{"string", "null"}},
		"amount":      map[string]any{"type": []string{"string", "number", "null"}},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"visit_date": map[string]any{"type": []string{"string", "null"}},
			"patients": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"properties": patientProps,
				},
			},
		},
		"required": []string{"patients"},
	}
}
