package repository

import (
	"context"

	"medical-visit-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	// FindByID returns nil, nil when the doctor does not exist.
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error)
}
