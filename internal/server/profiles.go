package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

type profileRequest struct {
	Name       string  `json:"name"`
	ClinicName *string `json:"clinicName,omitempty"`
}

// ListProfiles backs the profile picker shown before any ledger work starts.
func (s *Service) ListProfiles(c echo.Context) error {
	profiles, err := s.profiles.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list profiles")
	}
	if profiles == nil {
		profiles = []*entity.Profile{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"profiles": profiles})
}

func (s *Service) GetProfile(c echo.Context) error {
	id, err := s.profileID(c)
	if err != nil {
		return err
	}
	p, err := s.profiles.GetByID(c.Request().Context(), id)
	if err != nil {
		return notFoundOr(err, "profile not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Service) CreateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	created, err := s.profiles.Create(c.Request().Context(), &entity.Profile{
		Name:       req.Name,
		ClinicName: req.ClinicName,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create profile")
	}
	return c.JSON(http.StatusCreated, created)
}
