package usecase

import (
	"context"
	"sort"
	"time"

	"medical-visit-scheduler/internal/converter"
	"medical-visit-scheduler/internal/delivery/dto"
	"medical-visit-scheduler/internal/domain/entity"
	"medical-visit-scheduler/internal/domain/repository"
	"medical-visit-scheduler/pkg/timeutil"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, req *dto.ListPatientsRequest) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	clock       clockwork.Clock
	patientRepo repository.PatientRepository
	maxPageSize int
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock clockwork.Clock,
	patientRepo repository.PatientRepository,
	maxPageSize int,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		clock:       clock,
		patientRepo: patientRepo,
		maxPageSize: maxPageSize,
	}
}

// ListPatients returns one page of patients, each with the latest completed
// visit per doctor. Count is the number of matching patients before visits
// still in progress or in the future are discarded.
func (u *patientUsecase) ListPatients(ctx context.Context, req *dto.ListPatientsRequest) (*dto.PatientListResponse, error) {
	if req.Page < 0 {
		return nil, newError(ErrInvalidArgument, "Page must not be negative")
	}
	if req.Size < 1 {
		return nil, newError(ErrInvalidArgument, "Page size must be at least 1")
	}

	size := req.Size
	if u.maxPageSize > 0 && size > u.maxPageSize {
		size = u.maxPageSize
	}

	filter := entity.PatientFilter{
		Search:    req.Search,
		DoctorIDs: req.DoctorIDs,
		Page:      req.Page,
		Size:      size,
	}

	patients, total, err := u.patientRepo.FindWithVisits(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to query patients: %+v", err)
		return nil, err
	}
	if len(patients) == 0 {
		u.log.Warnf("No patients found for search: '%s' and doctorIds: %v", req.Search, req.DoctorIDs)
		return nil, newError(ErrNotFound, "No patients found")
	}

	now := u.clock.Now()
	data := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		visits, err := latestCompletedVisits(patients[i].Visits, now)
		if err != nil {
			u.log.Errorf("Failed to evaluate visits of patient %d: %+v", patients[i].ID, err)
			return nil, err
		}
		if len(visits) == 0 {
			continue
		}

		resp, err := converter.PatientToResponse(&patients[i], visits)
		if err != nil {
			return nil, err
		}
		data = append(data, *resp)
	}

	return &dto.PatientListResponse{
		Data:  data,
		Count: total,
	}, nil
}

// latestCompletedVisits keeps, per doctor, the completed visit with the latest
// start. A visit is completed once its end, seen in the doctor's zone, is
// strictly before now. On equal starts the first visit seen wins. The result is
// ordered by doctor id; visits without a loaded doctor are ignored.
func latestCompletedVisits(visits []entity.Visit, now time.Time) ([]entity.Visit, error) {
	zones := make(map[string]*time.Location)
	latest := make(map[int64]entity.Visit)

	for _, v := range visits {
		if v.Doctor == nil {
			continue
		}

		loc, ok := zones[v.Doctor.Timezone]
		if !ok {
			var err error
			loc, err = timeutil.LoadZone(v.Doctor.Timezone)
			if err != nil {
				return nil, err
			}
			zones[v.Doctor.Timezone] = loc
		}

		if !v.IsCompletedAt(now, loc) {
			continue
		}

		if cur, ok := latest[v.DoctorID]; !ok || v.StartDateTime.After(cur.StartDateTime) {
			latest[v.DoctorID] = v
		}
	}

	result := make([]entity.Visit, 0, len(latest))
	for _, v := range latest {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DoctorID < result[j].DoctorID
	})
	return result, nil
}
