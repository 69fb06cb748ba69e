package converter

import (
	"medical-visit-scheduler/internal/delivery/dto"
	"medical-visit-scheduler/internal/domain/entity"
)

// PatientToResponse converts a patient and the visits chosen for display.
func PatientToResponse(patient *entity.Patient, visits []entity.Visit) (*dto.PatientResponse, error) {
	response := &dto.PatientResponse{
		FirstName:  patient.FirstName,
		LastName:   patient.LastName,
		LastVisits: make([]dto.VisitResponse, 0, len(visits)),
	}

	for i := range visits {
		visit, err := VisitToResponse(&visits[i])
		if err != nil {
			return nil, err
		}
		response.LastVisits = append(response.LastVisits, *visit)
	}

	return response, nil
}
