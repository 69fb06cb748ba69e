package repository

import (
	"context"

	"medical-visit-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	// FindByID returns nil, nil when the patient does not exist.
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)

	// FindWithVisits returns one page of distinct patients having at least one
	// visit that matches the filter, with those visits and their doctors
	// (TotalPatients populated), plus the total number of matching patients.
	FindWithVisits(ctx context.Context, db *gorm.DB, filter entity.PatientFilter) ([]entity.Patient, int64, error)
}
