package converter

import (
	"medical-visit-scheduler/internal/delivery/dto"
	"medical-visit-scheduler/internal/domain/entity"
	"medical-visit-scheduler/pkg/timeutil"
)

// VisitToResponse renders the visit in its doctor's timezone. The visit must
// have its Doctor loaded.
func VisitToResponse(visit *entity.Visit) (*dto.VisitResponse, error) {
	start, err := timeutil.FormatInZone(visit.StartDateTime, visit.Doctor.Timezone)
	if err != nil {
		return nil, err
	}
	end, err := timeutil.FormatInZone(visit.EndDateTime, visit.Doctor.Timezone)
	if err != nil {
		return nil, err
	}

	return &dto.VisitResponse{
		Start:  start,
		End:    end,
		Doctor: DoctorToResponse(visit.Doctor),
	}, nil
}

// CreatedVisitToResponse converts a freshly stored visit, displayed in the given zone.
func CreatedVisitToResponse(visit *entity.Visit, timezone string) (*dto.CreatedVisitResponse, error) {
	start, err := timeutil.FormatInZone(visit.StartDateTime, timezone)
	if err != nil {
		return nil, err
	}
	end, err := timeutil.FormatInZone(visit.EndDateTime, timezone)
	if err != nil {
		return nil, err
	}

	return &dto.CreatedVisitResponse{
		ID:        visit.ID,
		Version:   visit.Version,
		Start:     start,
		End:       end,
		PatientID: visit.PatientID,
		DoctorID:  visit.DoctorID,
	}, nil
}
