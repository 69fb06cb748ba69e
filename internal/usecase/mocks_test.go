package usecase

import (
	"context"
	"testing"
	"time"

	"medical-visit-scheduler/internal/domain/entity"
	"medical-visit-scheduler/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open gorm over sqlmock: %v", err)
	}
	return db, sqlMock
}

type mockDoctorRepository struct {
	mock.Mock
}

func (m *mockDoctorRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Doctor), args.Error(1)
}

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *mockPatientRepository) FindWithVisits(ctx context.Context, db *gorm.DB, filter entity.PatientFilter) ([]entity.Patient, int64, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Patient), args.Get(1).(int64), args.Error(2)
}

type mockVisitRepository struct {
	mock.Mock
}

func (m *mockVisitRepository) ExistsOverlapping(ctx context.Context, db *gorm.DB, doctorID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, db, doctorID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *mockVisitRepository) Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	args := m.Called(ctx, db, visit)
	return args.Error(0)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(ctx, tx, action, entityName, entityID, newValue)
	return args.Error(0)
}

type mockDoctorLocker struct {
	mock.Mock
	released int
}

func (m *mockDoctorLocker) Acquire(ctx context.Context, doctorID int64) (service.UnlockFunc, error) {
	args := m.Called(ctx, doctorID)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func() { m.released++ }, nil
}
