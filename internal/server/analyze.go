package server

import (
	"io"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dentistnoor/DentistFriend-V2-sub000/constants"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/pipeline"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/staging"
)

// analyzeResponse is the body for a finished batch: the staged records plus
// per-file failures the client may surface.
type analyzeResponse struct {
	Records  []entity.StagedPatientRecord `json:"records"`
	Failures []pipeline.FileFailure       `json:"failures,omitempty"`
}

// Analyze accepts a multipart batch of ledger photos, runs the extraction
// pipeline synchronously, and stages the result for review. Parts are read
// with a streaming multipart reader so submission order survives; echo's
// parsed form would lose it.
func (s *Service) Analyze(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}

	if s.cfg.Vision.APIKey == "" {
		return echo.NewHTTPError(http.StatusInternalServerError,
			"vision model API key is not configured")
	}

	files, indices, rejected, err := readUploads(c)
	if err != nil {
		return err
	}
	if len(files)+len(rejected) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No files provided")
	}

	sess := s.session(profileID)
	sess.BeginAnalysis()

	var records []entity.StagedPatientRecord
	failures := rejected
	if len(files) > 0 {
		recs, batchFailures, err := s.batch.Run(c.Request().Context(), files, sess.SetProgress)
		if err != nil {
			sess.FailAnalysis()
			return echo.NewHTTPError(http.StatusInternalServerError, "analysis failed")
		}
		records = recs
		// batch failure indices count accepted files only; map them back
		// onto submission positions so they line up with rejected parts
		for _, f := range batchFailures {
			f.Index = indices[f.Index]
			failures = append(failures, f)
		}
	}
	sort.Slice(failures, func(i, j int) bool { return failures[i].Index < failures[j].Index })
	sess.FinishAnalysis(records)

	if records == nil {
		records = []entity.StagedPatientRecord{}
	}
	return c.JSON(http.StatusOK, analyzeResponse{Records: records, Failures: failures})
}

// readUploads streams multipart parts in wire order, accepting any file part
// whose field name starts with "file". A part with an unsupported extension
// or a failed read is a per-file failure, never a request failure; the rest
// of the batch still runs. indices maps each accepted file back to its
// submission position among the file parts.
func readUploads(c echo.Context) (files []pipeline.UploadedFile, indices []int, rejected []pipeline.FileFailure, err error) {
	mr, err := c.Request().MultipartReader()
	if err != nil {
		return nil, nil, nil, echo.NewHTTPError(http.StatusBadRequest, "request must be multipart/form-data")
	}

	idx := 0
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, nil, echo.NewHTTPError(http.StatusBadRequest, "malformed multipart body")
		}
		if part.FileName() == "" || !strings.HasPrefix(part.FormName(), "file") {
			part.Close()
			continue
		}
		name := part.FileName()

		ext := constants.NormalizeExt(path.Ext(name))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			part.Close()
			rejected = append(rejected, pipeline.FileFailure{
				Index: idx, Name: name, Error: "unsupported file type",
			})
			idx++
			continue
		}

		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			rejected = append(rejected, pipeline.FileFailure{
				Index: idx, Name: name, Error: "failed to read upload",
			})
			idx++
			continue
		}

		mime := part.Header.Get("Content-Type")
		if mime == "" || mime == "application/octet-stream" {
			mime = constants.FallbackMIMEType(ext)
		}
		files = append(files, pipeline.UploadedFile{
			Name:     name,
			MIMEType: mime,
			Data:     data,
		})
		indices = append(indices, idx)
		idx++
	}
	return files, indices, rejected, nil
}

// SessionState reports the review session snapshot for the calling profile.
func (s *Service) SessionState(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.session(profileID).Snapshot())
}

func (s *Service) SessionNext(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	idx := s.session(profileID).Next()
	return c.JSON(http.StatusOK, map[string]int{"index": idx})
}

func (s *Service) SessionPrev(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	idx := s.session(profileID).Prev()
	return c.JSON(http.StatusOK, map[string]int{"index": idx})
}

// SessionEdit replaces the record under review with the submitted copy.
func (s *Service) SessionEdit(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	var rec entity.StagedPatientRecord
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record body")
	}
	if err := s.session(profileID).UpdateCurrent(rec); err != nil {
		return sessionError(err)
	}
	return c.JSON(http.StatusOK, s.session(profileID).Snapshot())
}

// SessionDelete removes the record under review from the staged list.
func (s *Service) SessionDelete(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	if err := s.session(profileID).DeleteCurrent(); err != nil {
		return sessionError(err)
	}
	return c.JSON(http.StatusOK, s.session(profileID).Snapshot())
}

// SessionCommit persists the staged list and ends the batch. On a store
// failure the session stays reviewable so the user can retry.
func (s *Service) SessionCommit(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	sess := s.session(profileID)

	staged, err := sess.BeginCommit()
	if err != nil {
		return sessionError(err)
	}

	res, err := s.commit.Run(c.Request().Context(), profileID, staged)
	if err != nil {
		sess.FailCommit()
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save records")
	}
	sess.FinishCommit()
	return c.JSON(http.StatusOK, res)
}

func sessionError(err error) error {
	switch err {
	case staging.ErrNotReviewing, staging.ErrNoRecords:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
