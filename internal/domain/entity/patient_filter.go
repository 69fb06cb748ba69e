package entity

// PatientFilter is a domain-level filter for the patient listing query.
// Used by repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Search    string  // Case-sensitive substring of the patient first name
	DoctorIDs []int64 // Restrict visits to these doctors, empty means all
	Page      int     // Zero based
	Size      int
}

// Offset returns the row offset of the page.
func (f PatientFilter) Offset() int {
	return f.Page * f.Size
}
