package vision

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

// ErrNoJSONObject means the model response contained no {...} span at all.
var ErrNoJSONObject = errors.New("no JSON object found in model response")

// ExtractJSONObject locates the first balanced-looking object span in noisy
// model text: greedy from the first '{' to the last '}'. The model is asked
// for bare JSON but routinely wraps it in prose or code fences, so tolerant
// extraction is required.
func ExtractJSONObject(text string) ([]byte, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONObject
	}
	return []byte(text[start : end+1]), nil
}

// ParseLedger turns raw model text into a LedgerExtraction, validating the
// shape against the ledger schema before any field access. The raw JSON span
// is returned alongside for logging. A failure here means the image yields
// zero records; it is never fatal for the batch.
func ParseLedger(text string) (entity.LedgerExtraction, []byte, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return entity.LedgerExtraction{}, nil, err
	}

	if err := ValidateJSONAgainstSchema(BuildLedgerJSONSchema(), raw); err != nil {
		return entity.LedgerExtraction{}, raw, fmt.Errorf("ledger shape invalid: %w", err)
	}

	var out entity.LedgerExtraction
	if err := json.Unmarshal(raw, &out); err != nil {
		return entity.LedgerExtraction{}, raw, fmt.Errorf("decode ledger: %w", err)
	}
	if out.Patients == nil {
		return entity.LedgerExtraction{}, raw, errors.New("ledger missing patients array")
	}
	return out, raw, nil
}
