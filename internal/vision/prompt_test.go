package vision

import (
	"strings"
	"testing"
)

func TestBuildLedgerPromptIsStable(t *testing.T) {
	a, b := BuildLedgerPrompt(), BuildLedgerPrompt()
	if a != b {
		t.Fatal("prompt must be deterministic")
	}
}

func TestBuildLedgerPromptNamesEveryField(t *testing.T) {
	prompt := BuildLedgerPrompt()
	for _, key := range []string{"visit_date", "patients", "name", "file_number", "gender", "nationality", "procedure", "amount"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("prompt missing field %q", key)
		}
	}
	if !strings.Contains(prompt, "ONLY valid JSON") {
		t.Error("prompt must demand a JSON-only response")
	}
}
