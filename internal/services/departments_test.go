package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"staffdesk/internal/models"
)

func TestDepartmentCRUD(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t, "departments_crud")
	svc := NewDepartmentService(store, testLogger())

	require.Len(t, svc.List(), 2, "Engineering and HR are seeded")

	dep, err := svc.Create(ctx, "Finance", "Accounting and payroll")
	require.NoError(t, err)
	require.Equal(t, 3, dep.ID)

	_, err = svc.Create(ctx, "", "missing name")
	require.ErrorIs(t, err, models.ErrValidation)

	require.NoError(t, svc.Update(ctx, 3, "Finance", "Accounting, payroll and procurement"))
	require.Equal(t, "Accounting, payroll and procurement", store.Data().FindDepartmentByID(3).Description)

	require.ErrorIs(t, svc.Update(ctx, 42, "X", "Y"), models.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, 3))
	require.Nil(t, store.Data().FindDepartmentByID(3))
	require.ErrorIs(t, svc.Delete(ctx, 3), models.ErrNotFound)
}

func TestDepartmentDelete_LeavesEmployeeReferencesDangling(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t, "departments_dangling")
	deps := NewDepartmentService(store, testLogger())
	emps := NewEmployeeService(store, testLogger())

	emp, err := emps.Create(ctx, EmployeeFields{
		EmployeeID: "E-1", UserEmail: "admin@example.com", Position: "Engineer",
		DepartmentID: 1, HireDate: "2024-01-15",
	})
	require.NoError(t, err)

	require.NoError(t, deps.Delete(ctx, 1))

	// no cascade: the employee row keeps its department reference
	kept := store.Data().FindEmployeeByID(emp.ID)
	require.NotNil(t, kept)
	require.Equal(t, 1, kept.DepartmentID)
	require.Nil(t, store.Data().FindDepartmentByID(1))
}
