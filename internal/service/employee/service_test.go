package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stafftrack/attendance-backend-go/internal/domain/department"
	"github.com/stafftrack/attendance-backend-go/internal/domain/employee"
	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	byName map[string]*employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{byName: map[string]*employee.Employee{}}
	for i := range emps {
		e := emps[i]
		r.byName[e.Name] = &e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByName(_ context.Context, name string) (employee.Employee, error) {
	e, ok := r.byName[name]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *e, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.byName {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.byName[name]
	return ok, nil
}

func (r *fakeEmployeeRepo) ListNamesByDepartment(_ context.Context, dept string) ([]string, error) {
	var out []string
	for _, e := range r.byName {
		if e.Department == dept {
			out = append(out, e.Name)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.byName[e.Name] = &e
	return e, nil
}

func (r *fakeEmployeeRepo) UpdateDepartment(_ context.Context, name, dept string) error {
	r.byName[name].Department = dept
	return nil
}

func (r *fakeEmployeeRepo) SetEndDate(_ context.Context, name string, endDate time.Time) error {
	r.byName[name].EndDate = &endDate
	return nil
}

func (r *fakeEmployeeRepo) AppendSalary(_ context.Context, name string, point employee.SalaryPoint) error {
	e := r.byName[name]
	e.BaseSalary = point.Salary
	e.SalaryHistory = append(e.SalaryHistory, point)
	return nil
}

type fakeDepartmentRepo struct {
	byName map[string]department.Department
}

func newFakeDepartmentRepo(names ...string) *fakeDepartmentRepo {
	r := &fakeDepartmentRepo{byName: map[string]department.Department{}}
	for _, n := range names {
		r.byName[n] = department.Department{Name: n, Hours: 8}
	}
	return r
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]department.Department, error) {
	var out []department.Department
	for _, d := range r.byName {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDepartmentRepo) GetByName(_ context.Context, name string) (department.Department, error) {
	d, ok := r.byName[name]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (r *fakeDepartmentRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.byName[name]
	return ok, nil
}

func (r *fakeDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	r.byName[d.Name] = d
	return d, nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, name string) error {
	delete(r.byName, name)
	return nil
}

func (r *fakeDepartmentRepo) AppendHours(_ context.Context, name string, point department.HoursPoint) error {
	d := r.byName[name]
	d.Hours = point.Hours
	d.HoursHistory = append(d.HoursHistory, point)
	r.byName[name] = d
	return nil
}

type fakePaymentRepo struct {
	records map[string]payment.Record
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{records: map[string]payment.Record{}}
}

func (r *fakePaymentRepo) Upsert(_ context.Context, name, month string, status payment.Status) (payment.Record, error) {
	key := name + "|" + month
	rec, ok := r.records[key]
	if !ok {
		rec = payment.Record{EmployeeName: name, Month: month}
	}
	rec.Status = status
	r.records[key] = rec
	return rec, nil
}

func (r *fakePaymentRepo) ListByEmployee(_ context.Context, name string) ([]payment.Record, error) {
	var out []payment.Record
	for _, rec := range r.records {
		if rec.EmployeeName == name {
			out = append(out, rec)
		}
	}
	return out, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(emps *fakeEmployeeRepo, depts *fakeDepartmentRepo, pays *fakePaymentRepo) *Service {
	s := NewService(emps, depts, pays)
	s.now = func() time.Time { return date(2024, 7, 10) }
	return s
}

func asha() employee.Employee {
	return employee.Employee{
		Name:       "Asha",
		BaseSalary: decimal.NewFromInt(60000),
		StartDate:  date(2024, 1, 1),
		Department: "Packing",
	}
}

func TestCreate(t *testing.T) {
	emps := newFakeEmployeeRepo()
	svc := newTestService(emps, newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:       "Asha",
		BaseSalary: decimal.NewFromInt(60000),
		StartDate:  "2024-01-01",
		Department: "Packing",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", created.Name)
	assert.Equal(t, date(2024, 1, 1), created.StartDate)

	_, ok := emps.byName["Asha"]
	assert.True(t, ok)
}

func TestCreate_DuplicateName(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(asha()), newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:       "Asha",
		BaseSalary: decimal.NewFromInt(50000),
		StartDate:  "2024-02-01",
		Department: "Packing",
	})
	assert.ErrorIs(t, err, employee.ErrNameExists)
}

func TestCreate_Invalid(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	tests := []struct {
		name  string
		req   employee.CreateEmployeeRequest
		field string
	}{
		{
			name:  "salary below minimum",
			req:   employee.CreateEmployeeRequest{Name: "Ravi", BaseSalary: decimal.NewFromInt(999), StartDate: "2024-01-01", Department: "Packing"},
			field: "base_salary",
		},
		{
			name:  "future start date",
			req:   employee.CreateEmployeeRequest{Name: "Ravi", BaseSalary: decimal.NewFromInt(60000), StartDate: "2024-08-01", Department: "Packing"},
			field: "start_date",
		},
		{
			name:  "missing name",
			req:   employee.CreateEmployeeRequest{BaseSalary: decimal.NewFromInt(60000), StartDate: "2024-01-01", Department: "Packing"},
			field: "name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestCreate_UnknownDepartment(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), newFakeDepartmentRepo(), newFakePaymentRepo())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:       "Asha",
		BaseSalary: decimal.NewFromInt(60000),
		StartDate:  "2024-01-01",
		Department: "Packing",
	})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestTransferDepartment(t *testing.T) {
	emps := newFakeEmployeeRepo(asha())
	svc := newTestService(emps, newFakeDepartmentRepo("Packing", "Shipping"), newFakePaymentRepo())

	emp, err := svc.TransferDepartment(context.Background(), "Asha", employee.TransferDepartmentRequest{Department: "Shipping"})
	require.NoError(t, err)
	assert.Equal(t, "Shipping", emp.Department)
	assert.Equal(t, "Shipping", emps.byName["Asha"].Department)
}

func TestTransferDepartment_Same(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(asha()), newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	_, err := svc.TransferDepartment(context.Background(), "Asha", employee.TransferDepartmentRequest{Department: "Packing"})
	assert.ErrorIs(t, err, employee.ErrSameDepartment)
}

func TestMarkInactive(t *testing.T) {
	emps := newFakeEmployeeRepo(asha())
	svc := newTestService(emps, newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	emp, err := svc.MarkInactive(context.Background(), "Asha", employee.MarkInactiveRequest{EndDate: "2024-06-30"})
	require.NoError(t, err)
	require.NotNil(t, emp.EndDate)
	assert.Equal(t, date(2024, 6, 30), *emp.EndDate)

	// A second attempt is rejected.
	_, err = svc.MarkInactive(context.Background(), "Asha", employee.MarkInactiveRequest{EndDate: "2024-07-01"})
	assert.ErrorIs(t, err, employee.ErrAlreadyInactive)
}

func TestMarkInactive_Bounds(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(asha()), newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	var errs validator.ValidationErrors
	_, err := svc.MarkInactive(context.Background(), "Asha", employee.MarkInactiveRequest{EndDate: "2023-12-31"})
	require.ErrorAs(t, err, &errs)

	_, err = svc.MarkInactive(context.Background(), "Asha", employee.MarkInactiveRequest{EndDate: "2024-07-11"})
	require.ErrorAs(t, err, &errs)
}

func TestUpdateSalary(t *testing.T) {
	emps := newFakeEmployeeRepo(asha())
	svc := newTestService(emps, newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	emp, err := svc.UpdateSalary(context.Background(), "Asha", employee.UpdateSalaryRequest{
		Salary:        decimal.NewFromInt(70000),
		EffectiveDate: "2024-07-01",
	})
	require.NoError(t, err)
	assert.True(t, emp.BaseSalary.Equal(decimal.NewFromInt(70000)))
	require.Len(t, emp.SalaryHistory, 1)
	assert.Equal(t, date(2024, 7, 1), emp.SalaryHistory[0].EffectiveDate)

	// Same effective date again is a conflict even with a different value.
	_, err = svc.UpdateSalary(context.Background(), "Asha", employee.UpdateSalaryRequest{
		Salary:        decimal.NewFromInt(80000),
		EffectiveDate: "2024-07-01",
	})
	assert.ErrorIs(t, err, employee.ErrDuplicateEffective)
}

func TestUpdateSalary_SameValue(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(asha()), newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	_, err := svc.UpdateSalary(context.Background(), "Asha", employee.UpdateSalaryRequest{
		Salary: decimal.NewFromInt(60000),
	})
	assert.ErrorIs(t, err, employee.ErrSameSalary)
}

func TestUpdateSalary_DefaultsEffectiveToToday(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(asha()), newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	emp, err := svc.UpdateSalary(context.Background(), "Asha", employee.UpdateSalaryRequest{
		Salary: decimal.NewFromInt(70000),
	})
	require.NoError(t, err)
	require.Len(t, emp.SalaryHistory, 1)
	assert.Equal(t, date(2024, 7, 10), emp.SalaryHistory[0].EffectiveDate)
}

func TestUpdatePaymentStatus(t *testing.T) {
	pays := newFakePaymentRepo()
	svc := newTestService(newFakeEmployeeRepo(asha()), newFakeDepartmentRepo("Packing"), pays)

	rec, err := svc.UpdatePaymentStatus(context.Background(), "Asha", "2024-06", employee.UpdatePaymentRequest{
		Status: payment.StatusPaid,
		Method: payment.MethodBank,
	})
	require.NoError(t, err)
	assert.Equal(t, payment.Status{Status: payment.StatusPaid, Method: payment.MethodBank}, rec.Status)

	_, err = svc.UpdatePaymentStatus(context.Background(), "Asha", "June 2024", employee.UpdatePaymentRequest{Status: payment.StatusPaid, Method: payment.MethodCash})
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)

	_, err = svc.UpdatePaymentStatus(context.Background(), "Asha", "2024-06", employee.UpdatePaymentRequest{Status: payment.StatusPaid})
	assert.ErrorAs(t, err, &errs)
}

func TestCommitPayment_StaleEmployee(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(asha()), newFakeDepartmentRepo("Packing"), newFakePaymentRepo())

	err := svc.CommitPayment(context.Background(), "Ghost", "2024-06", payment.Status{Status: payment.StatusPaid, Method: payment.MethodCash})
	assert.ErrorIs(t, err, payment.ErrEmployeeNotFound)

	err = svc.CommitPayment(context.Background(), "Asha", "2024-06", payment.Status{Status: payment.StatusPaid, Method: payment.MethodCash})
	assert.NoError(t, err)
}
