package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"medical-visit-scheduler/internal/delivery/dto"
	"medical-visit-scheduler/internal/usecase"
	"medical-visit-scheduler/pkg/response"
)

type PatientHandler struct {
	patientUsecase  usecase.PatientUsecase
	defaultPageSize int
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, defaultPageSize int) *PatientHandler {
	return &PatientHandler{
		patientUsecase:  patientUsecase,
		defaultPageSize: defaultPageSize,
	}
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	req, errs := h.parseListRequest(r)
	if len(errs) > 0 {
		response.Error(w, http.StatusBadRequest, "Invalid query parameters", errs)
		return
	}

	list, err := h.patientUsecase.ListPatients(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidArgument):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get patients")
		}
		return
	}

	response.JSON(w, http.StatusOK, list)
}

// parseListRequest reads page, size, search and doctorIds. doctorIds may be
// repeated, comma separated, or both.
func (h *PatientHandler) parseListRequest(r *http.Request) (*dto.ListPatientsRequest, map[string]string) {
	q := r.URL.Query()
	errs := make(map[string]string)

	req := &dto.ListPatientsRequest{
		Page:   0,
		Size:   h.defaultPageSize,
		Search: q.Get("search"),
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			errs["page"] = "page must be an integer"
		}
		req.Page = page
	}
	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			errs["size"] = "size must be an integer"
		}
		req.Size = size
	}

	for _, raw := range q["doctorIds"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				errs["doctorIds"] = "doctorIds must be a list of integers"
				continue
			}
			req.DoctorIDs = append(req.DoctorIDs, id)
		}
	}

	return req, errs
}
