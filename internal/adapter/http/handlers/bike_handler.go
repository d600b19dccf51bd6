package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "taller_moto/internal/adapter/http/dto/request"
	response "taller_moto/internal/adapter/http/dto/response"
	"taller_moto/internal/console"
	"taller_moto/internal/domain/entities"
	"taller_moto/internal/usecase"
	"taller_moto/pkg"
)

var (
	errInvalidBikePayload = pkg.NewDomainErrorSimple("INVALID_BIKE_INPUT", "Invalid bike payload", http.StatusBadRequest)
)

// BikeHandler serves the bike collection and the bike+client registration
// form.

type BikeHandler struct {
	session *console.Session
	drafts  usecase.IOrderDraftUseCase
}

func NewBikeHandler(session *console.Session, drafts usecase.IOrderDraftUseCase) *BikeHandler {
	return &BikeHandler{session: session, drafts: drafts}
}

// ListBikes returns the loaded bike collection, optionally narrowed by the
// picker query (?q=) matching plate or brand.
func (h *BikeHandler) ListBikes(c *gin.Context) {
	bikes := h.session.Bikes()

	if q := c.Query("q"); q != "" {
		var matched []entities.Bike
		for bike := range usecase.FilterBikes(bikes, q) {
			matched = append(matched, bike)
		}
		bikes = matched
	}

	c.JSON(http.StatusOK, response.FromBikes(bikes))
}

// RegisterBike validates and creates a bike together with its client, then
// reloads the collection so server-assigned fields never diverge locally.
func (h *BikeHandler) RegisterBike(c *gin.Context) {
	var payload request.RegisterBikeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBikePayload.HTTPStatus, errInvalidBikePayload.ToHTTPError())
		return
	}

	h.session.ClearError()

	bike, err := h.drafts.RegisterBike(c.Request.Context(), payload.ToRegistration())
	if err != nil {
		appErr := mapBikeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.session.RefreshBikes(c.Request.Context()); err != nil {
		log.Printf("[console][bikes] reload after registration failed err=%v", err)
	}

	c.JSON(http.StatusCreated, response.FromBike(bike))
}

func mapBikeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlaca),
		errors.Is(err, usecase.ErrMissingBrand),
		errors.Is(err, usecase.ErrMissingModel),
		errors.Is(err, usecase.ErrMissingCylinder),
		errors.Is(err, usecase.ErrInvalidNombre),
		errors.Is(err, usecase.ErrInvalidTelefono),
		errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainError("INVALID_BIKE_INPUT", err.Error(), err, http.StatusBadRequest)
	default:
		return mapUpstreamError(err)
	}
}
