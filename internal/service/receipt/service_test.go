package receipt

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailops/turnos-backend/internal/config"
	"github.com/retailops/turnos-backend/internal/domain/employee"
	"github.com/retailops/turnos-backend/internal/domain/extras"
	"github.com/retailops/turnos-backend/internal/domain/receipt"
	"github.com/retailops/turnos-backend/internal/domain/schedule"
	"github.com/retailops/turnos-backend/internal/domain/timeclock"
)

type fakeReceiptRepo struct {
	stored map[string]receipt.Receipt
}

func receiptKey(employeeID string, year, month int) string {
	return employeeID + "|" + time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakeReceiptRepo) Get(ctx context.Context, employeeID string, year, month int) (receipt.Receipt, error) {
	rec, ok := f.stored[receiptKey(employeeID, year, month)]
	if !ok {
		return receipt.Receipt{}, receipt.ErrReceiptNotFound
	}
	return rec, nil
}

func (f *fakeReceiptRepo) Upsert(ctx context.Context, rec receipt.Receipt) (receipt.Receipt, error) {
	f.stored[receiptKey(rec.EmployeeID, rec.Year, rec.Month)] = rec
	return rec, nil
}

func (f *fakeReceiptRepo) Delete(ctx context.Context, employeeID string, year, month int) error {
	key := receiptKey(employeeID, year, month)
	if _, ok := f.stored[key]; !ok {
		return receipt.ErrReceiptNotFound
	}
	delete(f.stored, key)
	return nil
}

type fakeTotalRepo struct {
	totals map[string]schedule.MonthlyTotal
}

func (f *fakeTotalRepo) Upsert(ctx context.Context, total schedule.MonthlyTotal) error {
	f.totals[receiptKey(total.EmployeeID, total.Year, total.Month)] = total
	return nil
}

func (f *fakeTotalRepo) List(ctx context.Context, year int, employeeID *string) ([]schedule.MonthlyTotal, error) {
	return nil, nil
}

func (f *fakeTotalRepo) Get(ctx context.Context, employeeID string, year, month int) (schedule.MonthlyTotal, error) {
	total, ok := f.totals[receiptKey(employeeID, year, month)]
	if !ok {
		return schedule.MonthlyTotal{}, schedule.ErrEntryNotFound
	}
	return total, nil
}

type fakeTimesheetRepo struct {
	minutes int
	pay     decimal.Decimal
}

func (f *fakeTimesheetRepo) Upsert(ctx context.Context, entry timeclock.TimesheetEntry) (timeclock.TimesheetEntry, error) {
	return entry, nil
}

func (f *fakeTimesheetRepo) List(ctx context.Context, year, month int, employeeID *string) ([]timeclock.TimesheetEntry, error) {
	return nil, nil
}

func (f *fakeTimesheetRepo) SumMonth(ctx context.Context, employeeID string, year, month int) (int, decimal.Decimal, error) {
	return f.minutes, f.pay, nil
}

func (f *fakeTimesheetRepo) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	return nil
}

type fakeExtrasRepo struct {
	bonuses    decimal.Decimal
	deductions decimal.Decimal
}

func (f *fakeExtrasRepo) Create(ctx context.Context, payment extras.Payment) (extras.Payment, error) {
	return payment, nil
}

func (f *fakeExtrasRepo) List(ctx context.Context, filter extras.ExtraFilter) ([]extras.Payment, error) {
	return nil, nil
}

func (f *fakeExtrasRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeExtrasRepo) SumByKind(ctx context.Context, employeeID string, year, month int) (decimal.Decimal, decimal.Decimal, error) {
	return f.bonuses, f.deductions, nil
}

type fakeEmployeeRepo struct {
	emp employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != f.emp.ID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) UpdateRate(ctx context.Context, id string, rate decimal.Decimal) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdateVacationDays(ctx context.Context, id string, remaining int) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService() (receipt.ReceiptService, *fakeReceiptRepo) {
	receiptRepo := &fakeReceiptRepo{stored: map[string]receipt.Receipt{}}
	totalRepo := &fakeTotalRepo{totals: map[string]schedule.MonthlyTotal{}}
	totalRepo.totals[receiptKey("emp-1", 2025, 6)] = schedule.MonthlyTotal{
		EmployeeID: "emp-1",
		Year:       2025,
		Month:      6,
		Hours:      decimal.NewFromInt(160),
		Pay:        decimal.NewFromInt(160000),
	}

	service := NewReceiptService(
		receiptRepo,
		totalRepo,
		&fakeTimesheetRepo{minutes: 9000, pay: decimal.NewFromInt(150000)}, // 150h
		&fakeExtrasRepo{bonuses: decimal.NewFromInt(10000), deductions: decimal.NewFromInt(2000)},
		&fakeEmployeeRepo{emp: employee.Employee{
			ID:         "emp-1",
			FirstName:  "Ana",
			LastName:   "García",
			HourlyRate: decimal.NewFromInt(1000),
		}},
		config.PayrollConfig{
			HolidayMultiplier:   decimal.NewFromInt(2),
			VacationWeekDivisor: 5,
			ConsumptionDiscount: decimal.NewFromFloat(0.8),
		},
	)
	return service, receiptRepo
}

var testQuery = receipt.ReceiptQuery{EmployeeID: "emp-1", Year: 2025, Month: 6}

func TestGet_Synthesized(t *testing.T) {
	service, _ := newTestService()

	resp, err := service.Get(context.Background(), testQuery)
	require.NoError(t, err)

	assert.False(t, resp.Persisted)
	assert.Equal(t, "Ana García", resp.EmployeeName)
	assert.Equal(t, "160", resp.PlannedHours.String())
	assert.Equal(t, "160000", resp.PlannedPay.String())
	assert.Equal(t, "150", resp.WorkedHours.String())
	assert.Equal(t, "150000", resp.WorkedPay.String())
	assert.Equal(t, "10000", resp.Bonuses.String())
	assert.Equal(t, "2000", resp.Deductions.String())
	// 150000 - 0*0.8 + 10000 - 2000
	assert.Equal(t, "158000", resp.NetPay.String())
}

func TestGet_UnknownEmployee(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Get(context.Background(), receipt.ReceiptQuery{
		EmployeeID: "emp-99", Year: 2025, Month: 6,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSave_PersistsWithConsumption(t *testing.T) {
	service, repo := newTestService()

	consumption := decimal.NewFromInt(5000)
	resp, err := service.Save(context.Background(), receipt.SaveReceiptRequest{
		EmployeeID:  "emp-1",
		Year:        2025,
		Month:       6,
		Consumption: &consumption,
	})
	require.NoError(t, err)

	assert.True(t, resp.Persisted)
	assert.Equal(t, "5000", resp.Consumption.String())
	// 150000 - 5000*0.8 + 10000 - 2000
	assert.Equal(t, "154000", resp.NetPay.String())
	assert.Len(t, repo.stored, 1)
}

func TestReset_BackToSynthesized(t *testing.T) {
	service, repo := newTestService()

	consumption := decimal.NewFromInt(5000)
	_, err := service.Save(context.Background(), receipt.SaveReceiptRequest{
		EmployeeID:  "emp-1",
		Year:        2025,
		Month:       6,
		Consumption: &consumption,
	})
	require.NoError(t, err)

	resp, err := service.Reset(context.Background(), testQuery)
	require.NoError(t, err)

	assert.False(t, resp.Persisted)
	assert.True(t, resp.Consumption.IsZero())
	assert.Empty(t, repo.stored)
}

func TestReset_NothingPersistedIsFine(t *testing.T) {
	service, _ := newTestService()

	resp, err := service.Reset(context.Background(), testQuery)
	require.NoError(t, err)
	assert.False(t, resp.Persisted)
}

func TestGet_ValidationErrors(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Get(context.Background(), receipt.ReceiptQuery{EmployeeID: "", Year: 2025, Month: 6})
	assert.Error(t, err)

	_, err = service.Get(context.Background(), receipt.ReceiptQuery{EmployeeID: "emp-1", Year: 2025, Month: 13})
	assert.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	service, _ := newTestService()

	content, filename, err := service.RenderPDF(context.Background(), testQuery)
	require.NoError(t, err)
	assert.Equal(t, "recibo_emp-1_06_2025.pdf", filename)
	assert.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}
