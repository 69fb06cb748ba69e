package handler

import (
	"encoding/json"
	"net/http"

	"medical-visit-scheduler/internal/delivery/dto"
	"medical-visit-scheduler/internal/usecase"
	"medical-visit-scheduler/pkg/response"
	"medical-visit-scheduler/pkg/validator"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

// CreateVisit answers business failures with 400 and the failure message as
// plain text.
func (h *VisitHandler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	errs := map[string]string{}
	if err := h.validator.Validate(&req); err != nil {
		errs = h.validator.FormatValidationErrors(err)
	}
	if req.Start.IsZero() {
		errs["start"] = "start is required"
	}
	if req.End.IsZero() {
		errs["end"] = "end is required"
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	visit, err := h.visitUsecase.CreateVisit(r.Context(), &req)
	if err != nil {
		if usecase.IsKnown(err) {
			response.Text(w, http.StatusBadRequest, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to create visit")
		return
	}

	response.Success(w, http.StatusOK, "Visit created successfully", visit)
}
