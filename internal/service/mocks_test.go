package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hospitaldesk-backend/internal/domain"
	"hospitaldesk-backend/internal/repository"
	"hospitaldesk-backend/internal/service"
)

// MockMedicationRepo
type MockMedicationRepo struct {
	mock.Mock
}

func (m *MockMedicationRepo) GetByID(ctx context.Context, id string) (*domain.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medication), args.Error(1)
}
func (m *MockMedicationRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Medication, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Medication), args.Get(1).(int32), args.Error(2)
}
func (m *MockMedicationRepo) Reserve(ctx context.Context, id string, quantity int32) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}
func (m *MockMedicationRepo) Restore(ctx context.Context, id string, quantity int32) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}
func (m *MockMedicationRepo) ListBelowStock(ctx context.Context, threshold int32) ([]domain.Medication, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]domain.Medication), args.Error(1)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Room, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Room), args.Get(1).(int32), args.Error(2)
}

// MockPatientRepo
type MockPatientRepo struct {
	mock.Mock
}

func (m *MockPatientRepo) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

// MockDoctorRepo
type MockDoctorRepo struct {
	mock.Mock
}

func (m *MockDoctorRepo) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Doctor), args.Error(1)
}

// MockPrescriptionRepo
type MockPrescriptionRepo struct {
	mock.Mock
}

func (m *MockPrescriptionRepo) Create(ctx context.Context, p *domain.Prescription) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPrescriptionRepo) GetByID(ctx context.Context, id string) (*domain.Prescription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prescription), args.Error(1)
}
func (m *MockPrescriptionRepo) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Prescription, int32, error) {
	args := m.Called(ctx, patientID, page, pageSize)
	return args.Get(0).([]domain.Prescription), args.Get(1).(int32), args.Error(2)
}
func (m *MockPrescriptionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStayRepo
type MockStayRepo struct {
	mock.Mock
}

func (m *MockStayRepo) Admit(ctx context.Context, stay *domain.InpatientStay) error {
	args := m.Called(ctx, stay)
	return args.Error(0)
}
func (m *MockStayRepo) Discharge(ctx context.Context, stayID, dischargeDate string) error {
	args := m.Called(ctx, stayID, dischargeDate)
	return args.Error(0)
}
func (m *MockStayRepo) GetByID(ctx context.Context, id string) (*domain.InpatientStay, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InpatientStay), args.Error(1)
}
func (m *MockStayRepo) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.InpatientStay, int32, error) {
	args := m.Called(ctx, patientID, page, pageSize)
	return args.Get(0).([]domain.InpatientStay), args.Get(1).(int32), args.Error(2)
}
func (m *MockStayRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockStayRepo) ListStatusMismatches(ctx context.Context) ([]domain.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Patient), args.Error(1)
}

// MockBillingRepo
type MockBillingRepo struct {
	mock.Mock
}

func (m *MockBillingRepo) Snapshot(ctx context.Context, patientID string, stayID, prescriptionID *string) (*repository.BillingSnapshot, error) {
	args := m.Called(ctx, patientID, stayID, prescriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BillingSnapshot), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) ListByPatient(ctx context.Context, patientID string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	args := m.Called(ctx, patientID, page, pageSize)
	return args.Get(0).([]domain.Transaction), args.Get(1).(int32), args.Error(2)
}
func (m *MockTransactionRepo) UpdateMethod(ctx context.Context, id string, method domain.PaymentMethod) error {
	args := m.Called(ctx, id, method)
	return args.Error(0)
}
func (m *MockTransactionRepo) Delete(ctx context.Context, id string) error {
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

var _ service.BillingService = (*MockBillingService)(nil)
