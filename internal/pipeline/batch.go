package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/vision"
)

// ErrNoFiles is the request-level validation failure for an empty batch.
var ErrNoFiles = errors.New("no files provided")

// UploadedFile is one client upload: raw bytes plus what the client declared
// about them. Never persisted; discarded once the batch finishes.
type UploadedFile struct {
	Name     string
	MIMEType string
	Data     []byte
}

// FileFailure records which file in a batch was skipped and why.
type FileFailure struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ProgressFunc receives (processed, total) after each file, successful or not.
type ProgressFunc func(done, total int)

// Batch runs the extraction pipeline over an ordered list of uploads:
// encode, model call, tolerant parse, per-row normalization. Files are
// processed independently; a failure on file i contributes zero records and
// never blocks files i+1..n. Output order follows file submission order, and
// within a file the model's row emission order.
type Batch struct {
	generator vision.ContentGenerator
	logger    *slog.Logger
}

func NewBatch(gen vision.ContentGenerator, logger *slog.Logger) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	return &Batch{generator: gen, logger: logger}
}

// Run processes the batch. It fails fatally only when zero files are
// provided; every other error is isolated to its file and reported in the
// failure list.
func (b *Batch) Run(ctx context.Context, files []UploadedFile, progress ProgressFunc) ([]entity.StagedPatientRecord, []FileFailure, error) {
	if len(files) == 0 {
		return nil, nil, ErrNoFiles
	}

	batchID := uuid.New().String()
	start := time.Now()
	b.logger.Info("pipeline.batch.start", "batch_id", batchID, "files", len(files))

	var records []entity.StagedPatientRecord
	var failures []FileFailure

	prompt := vision.BuildLedgerPrompt()
	for i, f := range files {
		recs, err := b.runFile(ctx, prompt, f)
		if err != nil {
			b.logger.Warn("pipeline.batch.file_failed",
				"batch_id", batchID, "index", i, "name", f.Name, "error", err)
			failures = append(failures, FileFailure{Index: i, Name: f.Name, Error: err.Error()})
		} else {
			records = append(records, recs...)
		}
		if progress != nil {
			progress(i+1, len(files))
		}
	}

	b.logger.Info("pipeline.batch.done",
		"batch_id", batchID,
		"records", len(records),
		"failed_files", len(failures),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return records, failures, nil
}

func (b *Batch) runFile(ctx context.Context, prompt string, f UploadedFile) ([]entity.StagedPatientRecord, error) {
	img := vision.EncodeImage(f.Data, f.MIMEType)

	text, err := b.generator.GenerateContent(ctx, prompt, img)
	if err != nil {
		return nil, err
	}

	ledger, _, err := vision.ParseLedger(text)
	if err != nil {
		return nil, err
	}

	out := make([]entity.StagedPatientRecord, 0, len(ledger.Patients))
	for _, raw := range ledger.Patients {
		out = append(out, NormalizeRecord(raw, ledger.VisitDate))
	}
	return out, nil
}
