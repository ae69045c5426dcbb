package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"dental-landing/internal/delivery/dto"
	"dental-landing/internal/service"
	"dental-landing/internal/usecase"
	"dental-landing/pkg/response"
	"dental-landing/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type LandingHandler struct {
	landingUsecase usecase.LandingUsecase
	validator      *validator.CustomValidator
}

func NewLandingHandler(landingUsecase usecase.LandingUsecase, validator *validator.CustomValidator) *LandingHandler {
	return &LandingHandler{
		landingUsecase: landingUsecase,
		validator:      validator,
	}
}

func (h *LandingHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.landingUsecase.ListRegions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get regions")
		return
	}

	response.Success(w, http.StatusOK, "Regions retrieved successfully", regions)
}

func (h *LandingHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	location, err := h.landingUsecase.GetLocation(r.Context(), mux.Vars(r)["region"])
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			response.NotFound(w, "Region not found")
			return
		}
		response.InternalServerError(w, "Failed to get region")
		return
	}

	response.Success(w, http.StatusOK, "Region retrieved successfully", location)
}

// MountView accepts an empty body, which mounts the default region.
func (h *LandingHandler) MountView(w http.ResponseWriter, r *http.Request) {
	var req dto.MountViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body")
		return
	}

	view, err := h.landingUsecase.MountView(r.Context(), req.Region)
	if err != nil {
		writeViewError(w, err, "Failed to mount view")
		return
	}

	response.Success(w, http.StatusCreated, "View mounted successfully", view)
}

func (h *LandingHandler) GetView(w http.ResponseWriter, r *http.Request) {
	viewID, ok := parseViewID(w, r)
	if !ok {
		return
	}

	view, err := h.landingUsecase.GetView(r.Context(), viewID)
	if err != nil {
		writeViewError(w, err, "Failed to get view")
		return
	}

	response.Success(w, http.StatusOK, "View retrieved successfully", view)
}

func (h *LandingHandler) UnmountView(w http.ResponseWriter, r *http.Request) {
	viewID, ok := parseViewID(w, r)
	if !ok {
		return
	}

	if err := h.landingUsecase.UnmountView(r.Context(), viewID); err != nil {
		writeViewError(w, err, "Failed to unmount view")
		return
	}

	response.Success(w, http.StatusOK, "View unmounted successfully", nil)
}

func (h *LandingHandler) SelectRegion(w http.ResponseWriter, r *http.Request) {
	viewID, ok := parseViewID(w, r)
	if !ok {
		return
	}

	var req dto.SelectRegionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	view, err := h.landingUsecase.SelectRegion(r.Context(), viewID, req.Region)
	if err != nil {
		writeViewError(w, err, "Failed to select region")
		return
	}

	response.Success(w, http.StatusOK, "Region selected successfully", view)
}

// Move handles POST /views/{id}/{carousel}/{direction}.
func (h *LandingHandler) Move(w http.ResponseWriter, r *http.Request) {
	viewID, ok := parseViewID(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	dir, ok := usecase.ParseDirection(vars["direction"])
	if !ok {
		response.NotFound(w, "")
		return
	}

	var (
		view *dto.ViewResponse
		err  error
	)
	switch vars["carousel"] {
	case "services":
		view, err = h.landingUsecase.MoveServices(r.Context(), viewID, dir)
	case "testimonials":
		view, err = h.landingUsecase.MoveTestimonials(r.Context(), viewID, dir)
	default:
		response.NotFound(w, "")
		return
	}
	if err != nil {
		writeViewError(w, err, "Failed to move carousel")
		return
	}

	response.Success(w, http.StatusOK, "Carousel moved successfully", view)
}

// Jump handles PUT /views/{id}/{carousel}/offset.
func (h *LandingHandler) Jump(w http.ResponseWriter, r *http.Request) {
	viewID, ok := parseViewID(w, r)
	if !ok {
		return
	}

	var req dto.JumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	var (
		view *dto.ViewResponse
		err  error
	)
	switch mux.Vars(r)["carousel"] {
	case "services":
		view, err = h.landingUsecase.JumpService(r.Context(), viewID, *req.Index)
	case "testimonials":
		view, err = h.landingUsecase.JumpTestimonial(r.Context(), viewID, *req.Index)
	default:
		response.NotFound(w, "")
		return
	}
	if err != nil {
		writeViewError(w, err, "Failed to move carousel")
		return
	}

	response.Success(w, http.StatusOK, "Carousel moved successfully", view)
}

func (h *LandingHandler) GetLinks(w http.ResponseWriter, r *http.Request) {
	viewID, ok := parseViewID(w, r)
	if !ok {
		return
	}

	links, err := h.landingUsecase.GetLinks(r.Context(), viewID)
	if err != nil {
		writeViewError(w, err, "Failed to get links")
		return
	}

	response.Success(w, http.StatusOK, "Links retrieved successfully", links)
}

func parseViewID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	viewID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid view ID")
		return uuid.Nil, false
	}
	return viewID, true
}

func writeViewError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrViewNotFound):
		response.NotFound(w, "View not found")
	case errors.Is(err, service.ErrRegionNotFound), errors.Is(err, usecase.ErrInvalidRegion):
		response.BadRequest(w, "Invalid region")
	case errors.Is(err, usecase.ErrInvalidIndex):
		response.BadRequest(w, "Index out of range")
	default:
		response.InternalServerError(w, fallback)
	}
}
