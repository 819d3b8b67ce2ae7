package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/service"
)

// MockPrescriptionService
type MockPrescriptionService struct {
	mock.Mock
}

func (m *MockPrescriptionService) ValidateLine(ctx context.Context, line service.LineInput) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}
func (m *MockPrescriptionService) Finalize(ctx context.Context, patientID, doctorID, date string, lines []service.LineInput) (*domain.Prescription, error) {
	args := m.Called(ctx, patientID, doctorID, date, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prescription), args.Error(1)
}
func (m *MockPrescriptionService) Get(ctx context.Context, id string) (*domain.Prescription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prescription), args.Error(1)
}
func (m *MockPrescriptionService) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Prescription, int32, error) {
	args := m.Called(ctx, patientID, page, pageSize)
	return args.Get(0).([]domain.Prescription), args.Get(1).(int32), args.Error(2)
}
func (m *MockPrescriptionService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStayService
type MockStayService struct {
	mock.Mock
}

func (m *MockStayService) Admit(ctx context.Context, patientID, roomID, admitDate string) (*domain.InpatientStay, error) {
	args := m.Called(ctx, patientID, roomID, admitDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InpatientStay), args.Error(1)
}
func (m *MockStayService) Discharge(ctx context.Context, stayID, dischargeDate string) (*domain.InpatientStay, int32, error) {
	args := m.Called(ctx, stayID, dischargeDate)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).(*domain.InpatientStay), args.Get(1).(int32), args.Error(2)
}
func (m *MockStayService) Get(ctx context.Context, id string) (*domain.InpatientStay, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InpatientStay), args.Error(1)
}
func (m *MockStayService) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.InpatientStay, int32, error) {
	args := m.Called(ctx, patientID, page, pageSize)
	return args.Get(0).([]domain.InpatientStay), args.Get(1).(int32), args.Error(2)
}
func (m *MockStayService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBillingService
type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) Estimate(ctx context.Context, patientID string, stayID, prescriptionID *string) (*domain.Estimate, error) {
	args := m.Called(ctx, patientID, stayID, prescriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Estimate), args.Error(1)
}

// MockTransactionService
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Create(ctx context.Context, patientID, prescriptionID string, stayID *string, method domain.PaymentMethod) (*domain.Transaction, error) {
	args := m.Called(ctx, patientID, prescriptionID, stayID, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateMethod(ctx context.Context, id string, method domain.PaymentMethod) error {
	args := m.Called(ctx, id, method)
	return args.Error(0)
}
func (m *MockTransactionService) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	args := m.Called(ctx, patientID, page, pageSize)
	return args.Get(0).([]domain.Transaction), args.Get(1).(int32), args.Error(2)
}
func (m *MockTransactionService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStockService
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) GetMedication(ctx context.Context, id string) (*domain.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medication), args.Error(1)
}
func (m *MockStockService) ListMedications(ctx context.Context, page, pageSize int32) ([]domain.Medication, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Medication), args.Get(1).(int32), args.Error(2)
}
func (m *MockStockService) Reserve(ctx context.Context, medicationID string, quantity int32) error {
	args := m.Called(ctx, medicationID, quantity)
	return args.Error(0)
}
func (m *MockStockService) Release(ctx context.Context, medicationID string, quantity int32) error {
	args := m.Called(ctx, medicationID, quantity)
	return args.Error(0)
}
func (m *MockStockService) LowStock(ctx context.Context, threshold int32) ([]domain.Medication, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]domain.Medication), args.Error(1)
}

// MockRoomService
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomService) List(ctx context.Context, page, pageSize int32) ([]domain.Room, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Room), args.Get(1).(int32), args.Error(2)
}
