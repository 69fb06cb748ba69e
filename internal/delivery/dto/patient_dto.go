package dto

// Request DTOs

type ListPatientsRequest struct {
	Page      int
	Size      int
	Search    string
	DoctorIDs []int64
}

// Response DTOs

type DoctorResponse struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	TotalPatients int64  `json:"totalPatients"`
}

type PatientResponse struct {
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	LastVisits []VisitResponse `json:"lastVisits"`
}

type PatientListResponse struct {
	Data  []PatientResponse `json:"data"`
	Count int64             `json:"count"`
}
