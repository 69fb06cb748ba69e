package handler

import (
	"context"

	"medical-visit-scheduler/internal/delivery/dto"

	"github.com/stretchr/testify/mock"
)

type mockVisitUsecase struct {
	mock.Mock
}

func (m *mockVisitUsecase) CreateVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.CreatedVisitResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreatedVisitResponse), args.Error(1)
}

type mockPatientUsecase struct {
	mock.Mock
}

func (m *mockPatientUsecase) ListPatients(ctx context.Context, req *dto.ListPatientsRequest) (*dto.PatientListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientListResponse), args.Error(1)
}
