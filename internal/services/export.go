package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"staffdesk/internal/logging"
	"staffdesk/internal/models"
	"staffdesk/internal/storage"
)

// ExportService writes the current employees and departments to an Excel
// workbook for offline reporting.
type ExportService struct {
	store *storage.Store
	log   logging.Logger
}

func NewExportService(store *storage.Store, log logging.Logger) *ExportService {
	return &ExportService{store: store, log: log}
}

// ExportWorkbook writes a workbook with an Employees sheet and a Departments
// sheet to path. Dangling references are exported as "Unknown", matching how
// they are rendered.
func (s *ExportService) ExportWorkbook(ctx context.Context, path string) error {
	data := s.store.Data()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const employeesSheet = "Employees"
	const departmentsSheet = "Departments"

	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	if _, err := f.NewSheet(departmentsSheet); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}

	header := []any{"ID", "Employee ID", "User", "Position", "Department", "Hire Date"}
	if err := f.SetSheetRow(employeesSheet, "A1", &header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	for i, emp := range data.Employees {
		row := []any{
			emp.ID,
			emp.EmployeeID,
			accountName(data, emp.UserEmail),
			emp.Position,
			departmentName(data, emp.DepartmentID),
			emp.HireDate,
		}
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(employeesSheet, cell, &row); err != nil {
			return fmt.Errorf("error writing employee row: %w", err)
		}
	}

	depHeader := []any{"ID", "Name", "Description"}
	if err := f.SetSheetRow(departmentsSheet, "A1", &depHeader); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	for i, dep := range data.Departments {
		row := []any{dep.ID, dep.Name, dep.Description}
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(departmentsSheet, cell, &row); err != nil {
			return fmt.Errorf("error writing department row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}

	s.log.Info(ctx, "workbook exported", "path", path,
		"employees", len(data.Employees), "departments", len(data.Departments))
	return nil
}

// accountName resolves an account email to a display name, "Unknown" when no
// account matches.
func accountName(data *models.Database, email string) string {
	if a := data.FindAccountByEmail(email); a != nil {
		return a.DisplayName()
	}
	return "Unknown"
}

// departmentName resolves a department ID to its name, "Unknown" when no
// department matches.
func departmentName(data *models.Database, id int) string {
	if d := data.FindDepartmentByID(id); d != nil {
		return d.Name
	}
	return "Unknown"
}
