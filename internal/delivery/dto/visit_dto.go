package dto

import "medical-visit-scheduler/pkg/timeutil"

// Request DTOs

// CreateVisitRequest carries start and end as wall-clock times in the doctor's timezone.
type CreateVisitRequest struct {
	Start     timeutil.LocalDateTime `json:"start"`
	End       timeutil.LocalDateTime `json:"end"`
	PatientID int64                  `json:"patientId" validate:"required,gt=0"`
	DoctorID  int64                  `json:"doctorId" validate:"required,gt=0"`
}

// Response DTOs

type VisitResponse struct {
	Start  string          `json:"start"`
	End    string          `json:"end"`
	Doctor *DoctorResponse `json:"doctor"`
}

type CreatedVisitResponse struct {
	ID        int64  `json:"id"`
	Version   int    `json:"version"`
	Start     string `json:"start"`
	End       string `json:"end"`
	PatientID int64  `json:"patientId"`
	DoctorID  int64  `json:"doctorId"`
}
