package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentistnoor/DentistFriend-V2-sub000/constants"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/common"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/pipeline"
)

// recordRequest is the manual-entry body. Dates travel as strings so the
// dashboard can send either ISO or the DD/MM/YYYY display form.
type recordRequest struct {
	VisitDate        string                 `json:"visitDate"`
	PatientName      string                 `json:"patientName"`
	FileNumber       string                 `json:"fileNumber"`
	Age              *int                   `json:"age,omitempty"`
	Gender           string                 `json:"gender,omitempty"`
	Nationality      *string                `json:"nationality,omitempty"`
	PatientType      string                 `json:"patientType,omitempty"`
	PaymentType      string                 `json:"type"`
	InsuranceCompany *string                `json:"insuranceCompany,omitempty"`
	Procedures       []entity.ProcedureItem `json:"procedures"`
	TotalAmount      float64                `json:"totalAmount"`
	Remarks          string                 `json:"remarks,omitempty"`
}

func (r recordRequest) toEntity() (*entity.PatientRecord, error) {
	if r.PatientName == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "patientName is required")
	}
	if r.FileNumber == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "fileNumber is required")
	}
	visitDate, err := pipeline.DisplayDateToISO(r.VisitDate)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "visitDate must be YYYY-MM-DD or DD/MM/YYYY")
	}

	gender, _ := constants.CanonicalizeGender(r.Gender)
	paymentType := r.PaymentType
	if paymentType == "" {
		paymentType = string(constants.PaymentTypeCash)
	}

	total := r.TotalAmount
	if total == 0 {
		for _, p := range r.Procedures {
			total += p.FinalAmount
		}
	}

	return &entity.PatientRecord{
		VisitDate:        visitDate,
		PatientName:      r.PatientName,
		FileNumber:       r.FileNumber,
		Age:              r.Age,
		Gender:           gender,
		Nationality:      r.Nationality,
		PatientType:      r.PatientType,
		PaymentType:      paymentType,
		InsuranceCompany: r.InsuranceCompany,
		Procedures:       r.Procedures,
		TotalAmount:      total,
		Remarks:          r.Remarks,
		Source:           string(constants.RecordSourceManual),
	}, nil
}

// CommitRecords persists a reviewed staged list submitted directly in the
// request body. The session-scoped variant lives on the session surface; this
// one serves clients that keep review state themselves.
func (s *Service) CommitRecords(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}

	var body struct {
		Records []entity.StagedPatientRecord `json:"records"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(body.Records) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no records to commit")
	}

	res, err := s.commit.Run(c.Request().Context(), profileID, body.Records)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save records")
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Service) ListRecords(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}

	from, to, err := dateRange(c)
	if err != nil {
		return err
	}

	records, err := s.patients.List(c.Request().Context(), profileID, from, to)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list records")
	}
	if records == nil {
		records = []*entity.PatientRecord{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"records": records})
}

func (s *Service) GetRecord(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	rec, err := s.patients.GetByID(c.Request().Context(), profileID, id)
	if err != nil {
		return notFoundOr(err, "record not found")
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Service) CreateRecord(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}

	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	rec, err := req.toEntity()
	if err != nil {
		return err
	}

	created, err := s.patients.Create(c.Request().Context(), profileID, rec)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create record")
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Service) UpdateRecord(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	rec, err := req.toEntity()
	if err != nil {
		return err
	}
	rec.ID = id

	updated, err := s.patients.Update(c.Request().Context(), profileID, rec)
	if err != nil {
		return notFoundOr(err, "record not found")
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Service) DeleteRecord(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	if err := s.patients.Delete(c.Request().Context(), profileID, id); err != nil {
		return notFoundOr(err, "record not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportRecords streams the profile's records as an XLSX workbook, optionally
// bounded by ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (s *Service) ExportRecords(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	from, to, err := dateRange(c)
	if err != nil {
		return err
	}

	data, err := s.exporter.ExportRecordsXLSX(c.Request().Context(), profileID, from, to)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to export records")
	}

	filename := "patient-records-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// dateRange parses the optional from/to query filters as ISO dates.
func dateRange(c echo.Context) (from, to *time.Time, err error) {
	if v := c.QueryParam("from"); v != "" {
		t, perr := time.Parse("2006-01-02", v)
		if perr != nil {
			return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		from = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, perr := time.Parse("2006-01-02", v)
		if perr != nil {
			return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		to = &t
	}
	return from, to, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, common.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, msg)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "database error")
}
