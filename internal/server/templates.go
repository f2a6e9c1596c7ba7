package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

type templateRequest struct {
	Name           string   `json:"name"`
	CashPrice      float64  `json:"cashPrice"`
	InsurancePrice *float64 `json:"insurancePrice,omitempty"`
}

func (r templateRequest) toEntity() (*entity.ProcedureTemplate, error) {
	if r.Name == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if r.CashPrice < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "cashPrice must not be negative")
	}
	if r.InsurancePrice != nil && *r.InsurancePrice < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "insurancePrice must not be negative")
	}
	return &entity.ProcedureTemplate{
		Name:           r.Name,
		CashPrice:      r.CashPrice,
		InsurancePrice: r.InsurancePrice,
	}, nil
}

func (s *Service) ListTemplates(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}

	templates, err := s.templates.List(c.Request().Context(), profileID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list templates")
	}
	if templates == nil {
		templates = []*entity.ProcedureTemplate{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"templates": templates})
}

func (s *Service) CreateTemplate(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}

	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	tpl, err := req.toEntity()
	if err != nil {
		return err
	}

	created, err := s.templates.Create(c.Request().Context(), profileID, tpl)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create template")
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Service) UpdateTemplate(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid template id")
	}

	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	tpl, err := req.toEntity()
	if err != nil {
		return err
	}
	tpl.ID = id

	updated, err := s.templates.Update(c.Request().Context(), profileID, tpl)
	if err != nil {
		return notFoundOr(err, "template not found")
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Service) DeleteTemplate(c echo.Context) error {
	profileID, err := s.profileID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid template id")
	}

	if err := s.templates.Delete(c.Request().Context(), profileID, id); err != nil {
		return notFoundOr(err, "template not found")
	}
	return c.NoContent(http.StatusNoContent)
}
