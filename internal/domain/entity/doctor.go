package entity

// Doctor is a practitioner; visit times are entered and displayed in Timezone.
type Doctor struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(255);not null" json:"last_name"`
	Timezone  string `gorm:"type:varchar(64);not null;index" json:"timezone"`

	// TotalPatients is the number of distinct patients with any visit with this
	// doctor. Computed by the store on read, never persisted.
	TotalPatients int64 `gorm:"-" json:"total_patients"`
}

func (Doctor) TableName() string {
	return "doctors"
}
