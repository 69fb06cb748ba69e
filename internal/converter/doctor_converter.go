package converter

import (
	"medical-visit-scheduler/internal/delivery/dto"
	"medical-visit-scheduler/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		FirstName:     doctor.FirstName,
		LastName:      doctor.LastName,
		TotalPatients: doctor.TotalPatients,
	}
}
