package staging

import (
	"errors"
	"sync"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

// Phase is the review workflow state for one batch session.
type Phase string

const (
	PhaseIdle       Phase = "Idle"
	PhaseAnalyzing  Phase = "Analyzing"
	PhaseReviewing  Phase = "Reviewing"
	PhaseCommitting Phase = "Committing"
)

// analysisMessages rotate under the progress bar while a batch runs. The
// progress itself is cosmetic, not proportional completion.
var analysisMessages = []string{
	"Reading ledger pages…",
	"Deciphering handwriting…",
	"Extracting patient rows…",
	"Normalizing dates and names…",
	"Almost there…",
}

var (
	ErrNotReviewing = errors.New("no batch under review")
	ErrNoRecords    = errors.New("no staged records")
)

// Session owns the staged record list for exactly one batch: analysis
// progress, sequential navigation, in-place edits, deletes, and the handoff
// to commit. Starting a new batch discards the previous state entirely.
type Session struct {
	mu       sync.Mutex
	phase    Phase
	progress int
	message  string
	records  []entity.StagedPatientRecord
	index    int
}

func NewSession() *Session {
	return &Session{phase: PhaseIdle}
}

// Snapshot is the externally visible session state.
type Snapshot struct {
	Phase    Phase                        `json:"phase"`
	Progress int                          `json:"progress"`
	Message  string                       `json:"message"`
	Records  []entity.StagedPatientRecord `json:"records"`
	Index    int                          `json:"index"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := make([]entity.StagedPatientRecord, len(s.records))
	copy(recs, s.records)
	return Snapshot{
		Phase:    s.phase,
		Progress: s.progress,
		Message:  s.message,
		Records:  recs,
		Index:    s.index,
	}
}

// BeginAnalysis resets the session and enters Analyzing. Allowed from any
// phase: a new batch always discards the previous one.
func (s *Session) BeginAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseAnalyzing
	s.progress = 0
	s.message = analysisMessages[0]
	s.records = nil
	s.index = 0
}

// SetProgress advances the cosmetic progress indicator. It never moves
// backwards and never reaches 100 here; only FinishAnalysis completes it.
func (s *Session) SetProgress(done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAnalyzing || total <= 0 {
		return
	}
	pct := done * 99 / total
	if pct > s.progress {
		s.progress = pct
	}
	s.message = analysisMessages[(done*len(analysisMessages)/(total+1))%len(analysisMessages)]
}

// FinishAnalysis stores the orchestrator output, completes the progress bar,
// and enters Reviewing.
func (s *Session) FinishAnalysis(records []entity.StagedPatientRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.index = 0
	s.progress = 100
	s.message = ""
	s.phase = PhaseReviewing
}

// FailAnalysis abandons the batch and returns to Idle.
func (s *Session) FailAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseIdle
	s.progress = 0
	s.message = ""
	s.records = nil
	s.index = 0
}

// Next moves to the following record, bounded at the end (no wraparound).
func (s *Session) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < len(s.records)-1 {
		s.index++
	}
	return s.index
}

// Prev moves to the preceding record, bounded at the start.
func (s *Session) Prev() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index > 0 {
		s.index--
	}
	return s.index
}

// Current returns the record under review.
func (s *Session) Current() (entity.StagedPatientRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 || s.index >= len(s.records) {
		return entity.StagedPatientRecord{}, false
	}
	return s.records[s.index], true
}

// UpdateCurrent replaces the record under review with the edited copy.
// Editing one field never recomputes others; OCR records carry no discount
// coupling.
func (s *Session) UpdateCurrent(rec entity.StagedPatientRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReviewing {
		return ErrNotReviewing
	}
	if len(s.records) == 0 {
		return ErrNoRecords
	}
	s.records[s.index] = rec
	return nil
}

// DeleteCurrent removes the record under review. The index clamps so it stays
// in bounds, landing on the new last record when the tail was deleted and on
// zero when the list empties.
func (s *Session) DeleteCurrent() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReviewing {
		return ErrNotReviewing
	}
	if len(s.records) == 0 {
		return ErrNoRecords
	}
	s.records = append(s.records[:s.index], s.records[s.index+1:]...)
	if s.index >= len(s.records) && s.index > 0 {
		s.index = len(s.records) - 1
	}
	if len(s.records) == 0 {
		s.index = 0
	}
	return nil
}

// BeginCommit hands the remaining list to the commit writer.
func (s *Session) BeginCommit() ([]entity.StagedPatientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReviewing {
		return nil, ErrNotReviewing
	}
	if len(s.records) == 0 {
		return nil, ErrNoRecords
	}
	s.phase = PhaseCommitting
	recs := make([]entity.StagedPatientRecord, len(s.records))
	copy(recs, s.records)
	return recs, nil
}

// FailCommit returns to Reviewing so the user can retry. Records already
// written stay written; the store does not roll back.
func (s *Session) FailCommit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseCommitting {
		s.phase = PhaseReviewing
	}
}

// FinishCommit ends the batch and returns to Idle.
func (s *Session) FinishCommit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseIdle
	s.progress = 0
	s.message = ""
	s.records = nil
	s.index = 0
}
