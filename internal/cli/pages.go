package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"staffdesk/internal/models"
	"staffdesk/internal/router"
	"staffdesk/internal/services"
)

// Go navigates to an arbitrary location token. Unknown tokens run through the
// guards and render nothing, like an unmatched hash in the original UI.
func (a *App) Go(ctx context.Context, location string) {
	a.navigate(ctx, location)
}

// enter routes to location and reports whether the guards kept us there.
// When a guard redirected, the effective page is rendered instead and the
// caller should stop.
func (a *App) enter(ctx context.Context, location string, want router.Page) bool {
	res := router.Resolve(location, a.session)
	a.location = res.Location
	if res.Page != want {
		printlnFn("Redirected to " + res.Location)
		a.render(ctx, res.Page)
		return false
	}
	return true
}

// render draws the resolved page. Access was already decided by the router;
// nothing here re-checks it.
func (a *App) render(ctx context.Context, page router.Page) {
	switch page {
	case router.PageHome:
		printlnFn("Welcome to StaffDesk. Type 'help' for commands.")
	case router.PageLogin:
		printlnFn("Login page. Type 'login' to sign in.")
	case router.PageRegister:
		printlnFn("Register page. Type 'register' to create an account.")
	case router.PageVerifyEmail:
		a.renderVerifyEmail(ctx)
	case router.PageProfile:
		a.renderProfile()
	case router.PageAccounts:
		a.renderAccounts()
	case router.PageDepartments:
		a.renderDepartments()
	case router.PageEmployees:
		a.renderEmployees()
	case router.PageRequests:
		a.renderRequests()
	case router.PageNone:
		// unknown location: no page is active
	}
}

func (a *App) renderVerifyEmail(ctx context.Context) {
	pending, err := a.store.PendingEmail(ctx)
	if err != nil || pending == "" {
		printlnFn("Verify email page. No verification is pending.")
		return
	}
	printlnFn("A verification email was sent to " + pending + ". Type 'verify' to simulate clicking the link.")
}

func (a *App) renderProfile() {
	account := a.session.Account
	fmt.Fprintf(a.out, "%s\nEmail: %s\nRole: %s\n", account.DisplayName(), account.Email, account.Role)
}

func (a *App) renderAccounts() {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tVERIFIED")
	for _, acc := range a.accounts.List() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", acc.ID, acc.DisplayName(), acc.Email, acc.Role, acc.Verified)
	}
	_ = w.Flush()
}

func (a *App) renderDepartments() {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, dep := range a.departments.List() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", dep.ID, dep.Name, dep.Description)
	}
	_ = w.Flush()
}

func (a *App) renderEmployees() {
	data := a.store.Data()
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE ID\tUSER\tPOSITION\tDEPARTMENT\tHIRE DATE")
	for _, emp := range a.employees.List() {
		user := "Unknown"
		if acc := data.FindAccountByEmail(emp.UserEmail); acc != nil {
			user = acc.DisplayName()
		}
		dep := "Unknown"
		if d := data.FindDepartmentByID(emp.DepartmentID); d != nil {
			dep = d.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", emp.ID, emp.EmployeeID, user, emp.Position, dep, emp.HireDate)
	}
	_ = w.Flush()
}

func (a *App) renderRequests() {
	mine := a.requests.ListForUser(a.session.Email())
	if len(mine) == 0 {
		printlnFn("No requests found.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tITEMS\tSTATUS\tDATE")
	for _, req := range mine {
		items := make([]string, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, fmt.Sprintf("%s (%d)", item.Name, item.Qty))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", req.ID, req.Type, strings.Join(items, ", "), req.Status, req.Date)
	}
	_ = w.Flush()
}

// Profile renders the profile page for the current session.
func (a *App) Profile(ctx context.Context) error {
	a.navigate(ctx, router.LocationProfile)
	return nil
}

// Accounts is the admin accounts page: list by default, add/edit/delete with
// arguments.
func (a *App) Accounts(ctx context.Context, args []string) error {
	if !a.enter(ctx, router.LocationAccounts, router.PageAccounts) {
		return nil
	}
	if len(args) == 0 {
		a.renderAccounts()
		return nil
	}

	switch args[0] {
	case "add":
		return a.addAccount(ctx)
	case "edit":
		id, err := argID(args)
		if err != nil {
			printlnFn(err)
			return nil
		}
		return a.editAccount(ctx, id)
	case "delete":
		id, err := argID(args)
		if err != nil {
			printlnFn(err)
			return nil
		}
		if err := a.accounts.Delete(ctx, id, a.session); err != nil {
			printlnFn("Delete failed:", err)
			return err
		}
		printlnFn("Account deleted successfully!")
		a.renderAccounts()
		return nil
	default:
		printlnFn("Usage: accounts [add|edit <id>|delete <id>]")
		return nil
	}
}

func (a *App) addAccount(ctx context.Context) error {
	f, err := a.promptAccountFields(true)
	if err != nil {
		return err
	}
	if _, err := a.accounts.Create(ctx, f); err != nil {
		printlnFn("Create failed:", err)
		return err
	}
	printlnFn("Account created successfully!")
	a.renderAccounts()
	return nil
}

func (a *App) editAccount(ctx context.Context, id int) error {
	f, err := a.promptAccountFields(false)
	if err != nil {
		return err
	}
	if err := a.accounts.Update(ctx, id, f); err != nil {
		printlnFn("Update failed:", err)
		return err
	}
	printlnFn("Account updated successfully!")
	a.renderAccounts()
	return nil
}

func (a *App) promptAccountFields(withPassword bool) (services.AccountFields, error) {
	var f services.AccountFields
	var err error

	if f.FirstName, err = GetSimpleText(a.reader, "First name", a.out); err != nil {
		return f, err
	}
	if f.LastName, err = GetSimpleText(a.reader, "Last name", a.out); err != nil {
		return f, err
	}
	if f.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return f, err
	}
	if withPassword {
		if f.Password, err = GetPassword(a.out); err != nil {
			return f, err
		}
	}
	role, err := GetSimpleText(a.reader, "Role (user/admin)", a.out)
	if err != nil {
		return f, err
	}
	f.Role = models.Role(role)
	verified, err := GetSimpleText(a.reader, "Verified (y/n)", a.out)
	if err != nil {
		return f, err
	}
	f.Verified = verified == "y" || verified == "yes"
	return f, nil
}

// Departments is the admin departments page.
func (a *App) Departments(ctx context.Context, args []string) error {
	if !a.enter(ctx, router.LocationDepartments, router.PageDepartments) {
		return nil
	}
	if len(args) == 0 {
		a.renderDepartments()
		return nil
	}

	switch args[0] {
	case "add":
		name, desc, err := a.promptDepartmentFields()
		if err != nil {
			return err
		}
		if _, err := a.departments.Create(ctx, name, desc); err != nil {
			printlnFn("Create failed:", err)
			return err
		}
		printlnFn("Department created successfully!")
		a.renderDepartments()
		return nil
	case "edit":
		id, err := argID(args)
		if err != nil {
			printlnFn(err)
			return nil
		}
		name, desc, perr := a.promptDepartmentFields()
		if perr != nil {
			return perr
		}
		if err := a.departments.Update(ctx, id, name, desc); err != nil {
			printlnFn("Update failed:", err)
			return err
		}
		printlnFn("Department updated successfully!")
		a.renderDepartments()
		return nil
	case "delete":
		id, err := argID(args)
		if err != nil {
			printlnFn(err)
			return nil
		}
		if err := a.departments.Delete(ctx, id); err != nil {
			printlnFn("Delete failed:", err)
			return err
		}
		printlnFn("Department deleted successfully!")
		a.renderDepartments()
		return nil
	default:
		printlnFn("Usage: departments [add|edit <id>|delete <id>]")
		return nil
	}
}

func (a *App) promptDepartmentFields() (string, string, error) {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return "", "", err
	}
	desc, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return "", "", err
	}
	return name, desc, nil
}

// Employees is the admin employees page.
func (a *App) Employees(ctx context.Context, args []string) error {
	if !a.enter(ctx, router.LocationEmployees, router.PageEmployees) {
		return nil
	}
	if len(args) == 0 {
		a.renderEmployees()
		return nil
	}

	switch args[0] {
	case "add":
		f, err := a.promptEmployeeFields()
		if err != nil {
			return err
		}
		if _, err := a.employees.Create(ctx, f); err != nil {
			printlnFn("Create failed:", err)
			return err
		}
		printlnFn("Employee added successfully!")
		a.renderEmployees()
		return nil
	case "edit":
		id, err := argID(args)
		if err != nil {
			printlnFn(err)
			return nil
		}
		f, perr := a.promptEmployeeFields()
		if perr != nil {
			return perr
		}
		if err := a.employees.Update(ctx, id, f); err != nil {
			printlnFn("Update failed:", err)
			return err
		}
		printlnFn("Employee updated successfully!")
		a.renderEmployees()
		return nil
	case "delete":
		id, err := argID(args)
		if err != nil {
			printlnFn(err)
			return nil
		}
		if err := a.employees.Delete(ctx, id); err != nil {
			printlnFn("Delete failed:", err)
			return err
		}
		printlnFn("Employee deleted successfully!")
		a.renderEmployees()
		return nil
	default:
		printlnFn("Usage: employees [add|edit <id>|delete <id>]")
		return nil
	}
}

func (a *App) promptEmployeeFields() (services.EmployeeFields, error) {
	var f services.EmployeeFields
	var err error

	if f.EmployeeID, err = GetSimpleText(a.reader, "Employee ID", a.out); err != nil {
		return f, err
	}
	if f.UserEmail, err = GetSimpleText(a.reader, "User email", a.out); err != nil {
		return f, err
	}
	if f.Position, err = GetSimpleText(a.reader, "Position", a.out); err != nil {
		return f, err
	}
	if f.DepartmentID, err = GetInt(a.reader, "Department ID", a.out); err != nil {
		return f, err
	}
	if f.HireDate, err = GetSimpleText(a.reader, "Hire date (YYYY-MM-DD)", a.out); err != nil {
		return f, err
	}
	return f, nil
}

// Requests is the requests page for the current session: list by default,
// add/delete with arguments.
func (a *App) Requests(ctx context.Context, args []string) error {
	if !a.enter(ctx, router.LocationRequests, router.PageRequests) {
		return nil
	}
	if len(args) == 0 {
		a.renderRequests()
		return nil
	}

	switch args[0] {
	case "add":
		return a.addRequest(ctx)
	case "delete":
		id, err := argID(args)
		if err != nil {
			printlnFn(err)
			return nil
		}
		if err := a.requests.Delete(ctx, id); err != nil {
			printlnFn("Delete failed:", err)
			return err
		}
		printlnFn("Request deleted successfully!")
		a.renderRequests()
		return nil
	default:
		printlnFn("Usage: requests [add|delete <id>]")
		return nil
	}
}

func (a *App) addRequest(ctx context.Context) error {
	typ, err := GetSimpleText(a.reader, "Request type (Equipment/Leave/Resources)", a.out)
	if err != nil {
		return err
	}

	var items []models.RequestItem
	for {
		name, err := GetSimpleText(a.reader, "Item name (empty line to finish)", a.out)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		qty, err := GetInt(a.reader, "Quantity", a.out)
		if err != nil {
			printlnFn(err)
			continue
		}
		items = append(items, models.RequestItem{Name: name, Qty: qty})
	}

	if _, err := a.requests.Create(ctx, a.session, models.RequestType(typ), items); err != nil {
		printlnFn("Request rejected:", err)
		return err
	}

	printlnFn("Request submitted successfully!")
	a.renderRequests()
	return nil
}

// Export writes the admin workbook. Scoped to the employees page guard since
// it reports the same data.
func (a *App) Export(ctx context.Context) error {
	if !a.enter(ctx, router.LocationEmployees, router.PageEmployees) {
		return nil
	}
	if err := a.export.ExportWorkbook(ctx, a.config.ExportPath); err != nil {
		printlnFn("Export failed:", err)
		return err
	}
	printlnFn("Exported to " + a.config.ExportPath)
	return nil
}

func argID(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("usage: %s <id>", args[0])
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("invalid id: %q", args[1])
	}
	return id, nil
}
