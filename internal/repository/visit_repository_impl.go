package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medical-visit-scheduler/internal/domain/entity"
	domainRepo "medical-visit-scheduler/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgreSQL error codes the visit write path cares about.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgExclusionViolation   = "23P01"
	pgUniqueViolation      = "23505"

	visitDoctorStartConstraint = "visits_doctor_id_start_date_time_key"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) ExistsOverlapping(ctx context.Context, db *gorm.DB, doctorID int64, start, end time.Time) (bool, error) {
	var exists bool
	err := db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM visits
			WHERE doctor_id = ?
			  AND `+entity.VisitOverlapCondition+`
		)`, doctorID, end.UTC(), start.UTC()).
		Scan(&exists).Error
	if err != nil {
		return false, translateVisitError(err)
	}
	return exists, nil
}

func (r *visitRepository) Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	if visit.Version == 0 {
		visit.Version = entity.InitialVisitVersion
	}
	visit.StartDateTime = visit.StartDateTime.UTC()
	visit.EndDateTime = visit.EndDateTime.UTC()

	if err := db.WithContext(ctx).Omit(clause.Associations).Create(visit).Error; err != nil {
		return translateVisitError(err)
	}
	return nil
}

// translateVisitError maps store-level conflicts onto repository sentinels and
// leaves every other error untouched.
func translateVisitError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgSerializationFailure, pgDeadlockDetected:
		return fmt.Errorf("%w: %s", domainRepo.ErrSerializationFailure, pgErr.Message)
	case pgExclusionViolation:
		return fmt.Errorf("%w: %s", domainRepo.ErrOverlappingVisit, pgErr.ConstraintName)
	case pgUniqueViolation:
		if strings.EqualFold(pgErr.ConstraintName, visitDoctorStartConstraint) {
			return fmt.Errorf("%w: %s", domainRepo.ErrOverlappingVisit, pgErr.ConstraintName)
		}
	}
	return err
}
