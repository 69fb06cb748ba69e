package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"medical-visit-scheduler/internal/converter"
	"medical-visit-scheduler/internal/delivery/dto"
	"medical-visit-scheduler/internal/domain/entity"
	"medical-visit-scheduler/internal/domain/repository"
	"medical-visit-scheduler/internal/service"
	"medical-visit-scheduler/pkg/timeutil"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	msgDoctorUnavailable      = "Doctor is not available at this time"
	msgConcurrentModification = "Concurrent modification detected. Please try again."
	msgInvalidVisitRange      = "Visit start must be before visit end"
)

type VisitUsecase interface {
	CreateVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.CreatedVisitResponse, error)
}

type visitUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	patientRepo  repository.PatientRepository
	visitRepo    repository.VisitRepository
	auditService service.AuditService
	doctorLocker service.DoctorLocker
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
	auditService service.AuditService,
	doctorLocker service.DoctorLocker,
) VisitUsecase {
	return &visitUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		patientRepo:  patientRepo,
		visitRepo:    visitRepo,
		auditService: auditService,
		doctorLocker: doctorLocker,
	}
}

// CreateVisit books a visit for a patient with a doctor.
//
// Flow:
// 1. Resolve doctor, then patient
// 2. Interpret start/end in the doctor's timezone and convert to UTC
// 3. Take the per-doctor redis lock
// 4. In a SERIALIZABLE transaction: overlap check, insert, audit entry
//
// The exclusion constraint on visits rejects anything that slips past 3 and 4.
func (u *visitUsecase) CreateVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.CreatedVisitResponse, error) {
	// Step 1: Resolve participants
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, newError(ErrNotFound, "Doctor with ID %d not found", req.DoctorID)
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, newError(ErrNotFound, "Patient with ID %d not found", req.PatientID)
	}

	// Step 2: Local wall clock -> UTC instants
	start, err := timeutil.ToUTC(req.Start, doctor.Timezone)
	if err != nil {
		u.log.Errorf("Doctor %d has an unusable timezone: %+v", doctor.ID, err)
		return nil, err
	}
	end, err := timeutil.ToUTC(req.End, doctor.Timezone)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, newError(ErrInvalidArgument, msgInvalidVisitRange)
	}

	// Step 3: Serialize bookings of this doctor
	unlock, err := u.doctorLocker.Acquire(ctx, doctor.ID)
	if err != nil {
		if errors.Is(err, service.ErrLockNotAcquired) {
			u.log.Infof("Doctor %d is locked by a concurrent booking", doctor.ID)
			return nil, newError(ErrConcurrencyConflict, msgConcurrentModification)
		}
		return nil, err
	}
	defer unlock()

	// Step 4: Check and insert atomically
	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	overlapping, err := u.visitRepo.ExistsOverlapping(ctx, tx, doctor.ID, start, end)
	if err != nil {
		return nil, u.storeError("check availability", err)
	}
	if overlapping {
		return nil, newError(ErrConflict, msgDoctorUnavailable)
	}

	visit := &entity.Visit{
		Version:       entity.InitialVisitVersion,
		StartDateTime: start,
		EndDateTime:   end,
		PatientID:     patient.ID,
		DoctorID:      doctor.ID,
	}
	if err := u.visitRepo.Create(ctx, tx, visit); err != nil {
		return nil, u.storeError("create visit", err)
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionVisitCreate, "visit", strconv.FormatInt(visit.ID, 10), visit); err != nil {
		return nil, u.storeError("audit visit", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, u.storeError("commit visit", err)
	}

	u.log.Infof("Visit created: id=%d, doctor=%d, patient=%d, start=%s", visit.ID, doctor.ID, patient.ID, start)

	resp, err := converter.CreatedVisitToResponse(visit, doctor.Timezone)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// storeError classifies a failure of the write path. Conflicts raised by the
// store become use-case errors, everything else is returned as is.
func (u *visitUsecase) storeError(op string, err error) error {
	switch {
	case isSerializationFailure(err):
		u.log.Infof("Serialization conflict during %s: %+v", op, err)
		return newError(ErrConcurrencyConflict, msgConcurrentModification)
	case errors.Is(err, repository.ErrOverlappingVisit):
		u.log.Infof("Overlap rejected by store during %s: %+v", op, err)
		return newError(ErrConflict, msgDoctorUnavailable)
	default:
		u.log.Warnf("Failed to %s: %+v", op, err)
		return err
	}
}

// isSerializationFailure also looks at raw pg errors, since commit failures
// never pass through the repository.
func isSerializationFailure(err error) bool {
	if errors.Is(err, repository.ErrSerializationFailure) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
