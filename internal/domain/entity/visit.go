package entity

import "time"

// InitialVisitVersion is the optimistic-lock version of a freshly inserted visit.
const InitialVisitVersion = 1

// Visit is a booked time range between a patient and a doctor.
// StartDateTime and EndDateTime are UTC instants.
type Visit struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Version       int       `gorm:"not null;default:1" json:"version"`
	StartDateTime time.Time `gorm:"type:timestamptz;not null" json:"start_date_time"`
	EndDateTime   time.Time `gorm:"type:timestamptz;not null" json:"end_date_time"`
	PatientID     int64     `gorm:"not null;index" json:"patient_id"`
	DoctorID      int64     `gorm:"not null;index" json:"doctor_id"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// VisitOverlapCondition is Overlaps written against the visits table. It is
// bound as (end, start) and shares the half-open rule of the visits_no_overlap
// exclusion constraint.
const VisitOverlapCondition = "start_date_time < ? AND end_date_time > ?"

// Overlaps reports whether the visit intersects [start, end).
// Touching endpoints do not overlap. Keep it in step with VisitOverlapCondition.
func (v *Visit) Overlaps(start, end time.Time) bool {
	return v.StartDateTime.Before(end) && v.EndDateTime.After(start)
}

// IsCompletedAt reports whether the visit ended strictly before now, both
// observed in the given zone.
func (v *Visit) IsCompletedAt(now time.Time, loc *time.Location) bool {
	return v.EndDateTime.In(loc).Before(now.In(loc))
}
