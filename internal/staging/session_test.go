package staging

import (
	"testing"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

func rec(name string) entity.StagedPatientRecord {
	return entity.StagedPatientRecord{Name: name, FileNumber: "1", PaymentType: "Cash"}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	if got := s.Snapshot().Phase; got != PhaseIdle {
		t.Fatalf("new session phase = %s", got)
	}

	s.BeginAnalysis()
	if got := s.Snapshot().Phase; got != PhaseAnalyzing {
		t.Fatalf("phase = %s, want Analyzing", got)
	}

	s.FinishAnalysis([]entity.StagedPatientRecord{rec("A"), rec("B")})
	snap := s.Snapshot()
	if snap.Phase != PhaseReviewing || snap.Progress != 100 || len(snap.Records) != 2 {
		t.Fatalf("snapshot = %+v", snap)
	}

	staged, err := s.BeginCommit()
	if err != nil {
		t.Fatalf("BeginCommit: %v", err)
	}
	if len(staged) != 2 {
		t.Fatalf("staged = %d", len(staged))
	}
	if got := s.Snapshot().Phase; got != PhaseCommitting {
		t.Fatalf("phase = %s, want Committing", got)
	}

	s.FinishCommit()
	snap = s.Snapshot()
	if snap.Phase != PhaseIdle || len(snap.Records) != 0 {
		t.Fatalf("snapshot after commit = %+v", snap)
	}
}

func TestSessionProgressIsMonotonicAndCapped(t *testing.T) {
	s := NewSession()
	s.BeginAnalysis()

	s.SetProgress(2, 4)
	p1 := s.Snapshot().Progress
	s.SetProgress(1, 4) // stale update must not move the bar backwards
	if p2 := s.Snapshot().Progress; p2 < p1 {
		t.Errorf("progress went backwards: %d -> %d", p1, p2)
	}

	s.SetProgress(4, 4)
	if p := s.Snapshot().Progress; p >= 100 {
		t.Errorf("progress = %d, must stay below 100 until analysis finishes", p)
	}
}

func TestSessionNavigationIsBounded(t *testing.T) {
	s := NewSession()
	s.BeginAnalysis()
	s.FinishAnalysis([]entity.StagedPatientRecord{rec("A"), rec("B"), rec("C")})

	if idx := s.Prev(); idx != 0 {
		t.Errorf("Prev at start = %d, want 0", idx)
	}
	s.Next()
	s.Next()
	if idx := s.Next(); idx != 2 {
		t.Errorf("Next past end = %d, want 2", idx)
	}
}

func TestSessionDeleteClampsIndex(t *testing.T) {
	s := NewSession()
	s.BeginAnalysis()
	s.FinishAnalysis([]entity.StagedPatientRecord{rec("A"), rec("B"), rec("C")})

	s.Next()
	s.Next() // now at C
	if err := s.DeleteCurrent(); err != nil {
		t.Fatalf("DeleteCurrent: %v", err)
	}
	cur, ok := s.Current()
	if !ok || cur.Name != "B" {
		t.Errorf("current after tail delete = %+v", cur)
	}

	if err := s.DeleteCurrent(); err != nil {
		t.Fatalf("DeleteCurrent: %v", err)
	}
	if err := s.DeleteCurrent(); err != nil {
		t.Fatalf("DeleteCurrent: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Error("current must report empty after last delete")
	}
	if err := s.DeleteCurrent(); err != ErrNoRecords {
		t.Errorf("delete on empty = %v, want ErrNoRecords", err)
	}
}

func TestSessionUpdateCurrentRequiresReviewing(t *testing.T) {
	s := NewSession()
	if err := s.UpdateCurrent(rec("A")); err != ErrNotReviewing {
		t.Fatalf("update while idle = %v, want ErrNotReviewing", err)
	}

	s.BeginAnalysis()
	s.FinishAnalysis([]entity.StagedPatientRecord{rec("A")})

	edited := rec("A")
	edited.Amount = 250
	if err := s.UpdateCurrent(edited); err != nil {
		t.Fatalf("UpdateCurrent: %v", err)
	}
	cur, _ := s.Current()
	if cur.Amount != 250 {
		t.Errorf("edit not applied: %+v", cur)
	}
}

func TestSessionFailCommitReturnsToReviewing(t *testing.T) {
	s := NewSession()
	s.BeginAnalysis()
	s.FinishAnalysis([]entity.StagedPatientRecord{rec("A")})

	if _, err := s.BeginCommit(); err != nil {
		t.Fatalf("BeginCommit: %v", err)
	}
	s.FailCommit()
	snap := s.Snapshot()
	if snap.Phase != PhaseReviewing || len(snap.Records) != 1 {
		t.Fatalf("after failed commit = %+v, want Reviewing with records intact", snap)
	}
}

func TestSessionNewBatchDiscardsPrevious(t *testing.T) {
	s := NewSession()
	s.BeginAnalysis()
	s.FinishAnalysis([]entity.StagedPatientRecord{rec("A")})

	s.BeginAnalysis()
	snap := s.Snapshot()
	if snap.Phase != PhaseAnalyzing || len(snap.Records) != 0 || snap.Progress != 0 {
		t.Fatalf("new batch must reset: %+v", snap)
	}
}
