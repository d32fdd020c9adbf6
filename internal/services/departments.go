package services

import (
	"context"
	"fmt"

	"staffdesk/internal/logging"
	"staffdesk/internal/models"
	"staffdesk/internal/storage"
)

// DepartmentService is the admin-facing CRUD over departments. Deleting a
// department does not cascade: employee rows keep their DepartmentID and are
// rendered with an "Unknown" department.
type DepartmentService struct {
	store *storage.Store
	log   logging.Logger
}

func NewDepartmentService(store *storage.Store, log logging.Logger) *DepartmentService {
	return &DepartmentService{store: store, log: log}
}

// List returns all departments in insertion order.
func (s *DepartmentService) List() []models.Department {
	return s.store.Data().Departments
}

func (s *DepartmentService) Create(ctx context.Context, name, description string) (*models.Department, error) {
	if name == "" || description == "" {
		return nil, models.ErrValidation
	}

	data := s.store.Data()
	dep := models.Department{ID: data.NextDepartmentID(), Name: name, Description: description}
	data.Departments = append(data.Departments, dep)

	if err := s.store.Save(ctx); err != nil {
		return nil, fmt.Errorf("error saving department: %w", err)
	}

	s.log.Info(ctx, "department created", "id", dep.ID, "name", dep.Name)
	return &data.Departments[len(data.Departments)-1], nil
}

func (s *DepartmentService) Update(ctx context.Context, id int, name, description string) error {
	if name == "" || description == "" {
		return models.ErrValidation
	}

	dep := s.store.Data().FindDepartmentByID(id)
	if dep == nil {
		return models.ErrNotFound
	}

	dep.Name = name
	dep.Description = description

	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("error saving department: %w", err)
	}
	return nil
}

func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	data := s.store.Data()
	if data.FindDepartmentByID(id) == nil {
		return models.ErrNotFound
	}

	kept := make([]models.Department, 0, len(data.Departments)-1)
	for _, d := range data.Departments {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	data.Departments = kept

	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("error saving departments: %w", err)
	}

	s.log.Info(ctx, "department deleted", "id", id)
	return nil
}
