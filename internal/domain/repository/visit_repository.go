package repository

import (
	"context"
	"errors"
	"time"

	"medical-visit-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

var (
	// ErrSerializationFailure means a concurrent transaction invalidated the write.
	ErrSerializationFailure = errors.New("serialization failure")
	// ErrOverlappingVisit means the store rejected the row as overlapping another
	// visit of the same doctor.
	ErrOverlappingVisit = errors.New("overlapping visit")
)

type VisitRepository interface {
	// ExistsOverlapping reports whether the doctor has a visit intersecting [start, end).
	ExistsOverlapping(ctx context.Context, db *gorm.DB, doctorID int64, start, end time.Time) (bool, error)

	// Create inserts the visit. Store-level conflicts are reported as
	// ErrSerializationFailure or ErrOverlappingVisit.
	Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error
}
