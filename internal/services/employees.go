package services

import (
	"context"
	"fmt"

	"staffdesk/internal/logging"
	"staffdesk/internal/models"
	"staffdesk/internal/storage"
)

// EmployeeService is the admin-facing CRUD over employee records. Foreign
// keys (UserEmail, DepartmentID) are not existence-checked at write time;
// dangling references are tolerated and resolved to "Unknown" when rendered.
type EmployeeService struct {
	store *storage.Store
	log   logging.Logger
}

func NewEmployeeService(store *storage.Store, log logging.Logger) *EmployeeService {
	return &EmployeeService{store: store, log: log}
}

// EmployeeFields are the editable fields of an employee record.
type EmployeeFields struct {
	EmployeeID   string
	UserEmail    string
	Position     string
	DepartmentID int
	HireDate     string
}

func (f EmployeeFields) validate() error {
	if f.EmployeeID == "" || f.UserEmail == "" || f.Position == "" || f.DepartmentID == 0 || f.HireDate == "" {
		return models.ErrValidation
	}
	return nil
}

// List returns all employees in insertion order.
func (s *EmployeeService) List() []models.Employee {
	return s.store.Data().Employees
}

func (s *EmployeeService) Create(ctx context.Context, f EmployeeFields) (*models.Employee, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	data := s.store.Data()
	emp := models.Employee{
		ID:           data.NextEmployeeID(),
		EmployeeID:   f.EmployeeID,
		UserEmail:    f.UserEmail,
		Position:     f.Position,
		DepartmentID: f.DepartmentID,
		HireDate:     f.HireDate,
	}
	data.Employees = append(data.Employees, emp)

	if err := s.store.Save(ctx); err != nil {
		return nil, fmt.Errorf("error saving employee: %w", err)
	}

	s.log.Info(ctx, "employee created", "id", emp.ID, "employeeId", emp.EmployeeID)
	return &data.Employees[len(data.Employees)-1], nil
}

func (s *EmployeeService) Update(ctx context.Context, id int, f EmployeeFields) error {
	if err := f.validate(); err != nil {
		return err
	}

	emp := s.store.Data().FindEmployeeByID(id)
	if emp == nil {
		return models.ErrNotFound
	}

	emp.EmployeeID = f.EmployeeID
	emp.UserEmail = f.UserEmail
	emp.Position = f.Position
	emp.DepartmentID = f.DepartmentID
	emp.HireDate = f.HireDate

	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("error saving employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	data := s.store.Data()
	if data.FindEmployeeByID(id) == nil {
		return models.ErrNotFound
	}

	kept := make([]models.Employee, 0, len(data.Employees)-1)
	for _, e := range data.Employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	data.Employees = kept

	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("error saving employees: %w", err)
	}

	s.log.Info(ctx, "employee deleted", "id", id)
	return nil
}
