package repository

import (
	"context"
	"errors"
	"strings"

	"medical-visit-scheduler/internal/domain/entity"
	domainRepo "medical-visit-scheduler/internal/domain/repository"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindWithVisits pages over patients, not visits. The count and the id page
// are fetched concurrently, so db must not be a transaction.
func (r *patientRepository) FindWithVisits(ctx context.Context, db *gorm.DB, filter entity.PatientFilter) ([]entity.Patient, int64, error) {
	var (
		total int64
		ids   []int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return matchingPatients(db.WithContext(gctx), filter).
			Distinct("patients.id").
			Count(&total).Error
	})
	g.Go(func() error {
		return matchingPatients(db.WithContext(gctx), filter).
			Distinct("patients.id").
			Order("patients.id").
			Limit(filter.Size).
			Offset(filter.Offset()).
			Pluck("patients.id", &ids).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if len(ids) == 0 {
		return nil, total, nil
	}

	var patients []entity.Patient
	err := db.WithContext(ctx).
		Preload("Visits", func(tx *gorm.DB) *gorm.DB {
			if len(filter.DoctorIDs) > 0 {
				tx = tx.Where("doctor_id IN ?", filter.DoctorIDs)
			}
			return tx.Order("start_date_time DESC")
		}).
		Preload("Visits.Doctor").
		Where("id IN ?", ids).
		Order("id").
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}

	if err := attachDoctorTotals(ctx, db, patients); err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

// matchingPatients joins patients to their visits and applies the optional
// first-name and doctor filters.
func matchingPatients(db *gorm.DB, filter entity.PatientFilter) *gorm.DB {
	query := db.Model(&entity.Patient{}).
		Joins("JOIN visits ON visits.patient_id = patients.id")

	if filter.Search != "" {
		query = query.Where("patients.first_name LIKE ?", "%"+likeEscaper.Replace(filter.Search)+"%")
	}
	if len(filter.DoctorIDs) > 0 {
		query = query.Where("visits.doctor_id IN ?", filter.DoctorIDs)
	}
	return query
}

type doctorTotal struct {
	DoctorID      int64
	TotalPatients int64
}

// attachDoctorTotals fills Doctor.TotalPatients on every loaded visit.
func attachDoctorTotals(ctx context.Context, db *gorm.DB, patients []entity.Patient) error {
	seen := make(map[int64]struct{})
	var doctorIDs []int64
	for _, p := range patients {
		for _, v := range p.Visits {
			if _, ok := seen[v.DoctorID]; !ok {
				seen[v.DoctorID] = struct{}{}
				doctorIDs = append(doctorIDs, v.DoctorID)
			}
		}
	}
	if len(doctorIDs) == 0 {
		return nil
	}

	var totals []doctorTotal
	err := db.WithContext(ctx).Model(&entity.Visit{}).
		Select("doctor_id, COUNT(DISTINCT patient_id) AS total_patients").
		Where("doctor_id IN ?", doctorIDs).
		Group("doctor_id").
		Scan(&totals).Error
	if err != nil {
		return err
	}

	byDoctor := make(map[int64]int64, len(totals))
	for _, t := range totals {
		byDoctor[t.DoctorID] = t.TotalPatients
	}

	for i := range patients {
		for j := range patients[i].Visits {
			if d := patients[i].Visits[j].Doctor; d != nil {
				d.TotalPatients = byDoctor[d.ID]
			}
		}
	}
	return nil
}
