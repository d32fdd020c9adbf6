// Package models defines the StaffDesk domain entities and the persisted
// aggregate that holds them.
package models

// Role classifies an account's access level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// RequestType classifies an item request.
type RequestType string

const (
	RequestTypeEquipment RequestType = "Equipment"
	RequestTypeLeave     RequestType = "Leave"
	RequestTypeResources RequestType = "Resources"
)

// RequestStatus is the review state of a request. Requests are always created
// Pending; no operation transitions them afterwards.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

// Account is a login identity. Email is unique among accounts and compared
// exactly (case-sensitive). The password is stored in plain text; this is a
// demo system with no real security guarantees.
type Account struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	Verified  bool   `json:"verified"`
}

// DisplayName returns the name shown in lists and the shell prompt.
func (a Account) DisplayName() string {
	return a.FirstName + " " + a.LastName
}

// Department groups employees. Referenced by Employee.DepartmentID; dangling
// references are tolerated and rendered as "Unknown".
type Department struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Employee is an HR record. UserEmail references Account.Email but is not
// enforced unique: one account may map to zero or many employee records.
type Employee struct {
	ID           int    `json:"id"`
	EmployeeID   string `json:"employeeId"`
	UserEmail    string `json:"userEmail"`
	Position     string `json:"position"`
	DepartmentID int    `json:"departmentId"`
	HireDate     string `json:"hireDate"`
}

// RequestItem is one line of an item request.
type RequestItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Request is an item request raised by an account. EmployeeEmail is the email
// of the account that created it, not a reference to an Employee record.
type Request struct {
	ID            int           `json:"id"`
	Type          RequestType   `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        RequestStatus `json:"status"`
	Date          string        `json:"date"`
	EmployeeEmail string        `json:"employeeEmail"`
}

// Counters hold the next ID for each collection. IDs come from these
// monotonic counters, never from the current collection length, so a deletion
// can never cause a later ID collision.
type Counters struct {
	Accounts    int `json:"accounts"`
	Departments int `json:"departments"`
	Employees   int `json:"employees"`
	Requests    int `json:"requests"`
}

// Database is the aggregate persisted as a single blob. All collections keep
// insertion order.
type Database struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
	Counters    Counters     `json:"counters"`
}

// EnsureCounters repairs counters on a loaded aggregate. Blobs written before
// counters existed carry zero values; each counter is raised to max(ID)+1 of
// its collection so newly assigned IDs stay unique.
func (d *Database) EnsureCounters() {
	for _, a := range d.Accounts {
		if a.ID >= d.Counters.Accounts {
			d.Counters.Accounts = a.ID + 1
		}
	}
	for _, dep := range d.Departments {
		if dep.ID >= d.Counters.Departments {
			d.Counters.Departments = dep.ID + 1
		}
	}
	for _, e := range d.Employees {
		if e.ID >= d.Counters.Employees {
			d.Counters.Employees = e.ID + 1
		}
	}
	for _, r := range d.Requests {
		if r.ID >= d.Counters.Requests {
			d.Counters.Requests = r.ID + 1
		}
	}
	if d.Counters.Accounts == 0 {
		d.Counters.Accounts = 1
	}
	if d.Counters.Departments == 0 {
		d.Counters.Departments = 1
	}
	if d.Counters.Employees == 0 {
		d.Counters.Employees = 1
	}
	if d.Counters.Requests == 0 {
		d.Counters.Requests = 1
	}
}

// NextAccountID returns a fresh account ID and advances the counter.
func (d *Database) NextAccountID() int {
	id := d.Counters.Accounts
	d.Counters.Accounts++
	return id
}

func (d *Database) NextDepartmentID() int {
	id := d.Counters.Departments
	d.Counters.Departments++
	return id
}

func (d *Database) NextEmployeeID() int {
	id := d.Counters.Employees
	d.Counters.Employees++
	return id
}

func (d *Database) NextRequestID() int {
	id := d.Counters.Requests
	d.Counters.Requests++
	return id
}

// FindAccountByEmail returns the account with exactly that email, or nil.
func (d *Database) FindAccountByEmail(email string) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].Email == email {
			return &d.Accounts[i]
		}
	}
	return nil
}

// FindAccountByID returns the account with that ID, or nil.
func (d *Database) FindAccountByID(id int) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].ID == id {
			return &d.Accounts[i]
		}
	}
	return nil
}

// FindDepartmentByID returns the department with that ID, or nil.
func (d *Database) FindDepartmentByID(id int) *Department {
	for i := range d.Departments {
		if d.Departments[i].ID == id {
			return &d.Departments[i]
		}
	}
	return nil
}

// FindEmployeeByID returns the employee with that ID, or nil.
func (d *Database) FindEmployeeByID(id int) *Employee {
	for i := range d.Employees {
		if d.Employees[i].ID == id {
			return &d.Employees[i]
		}
	}
	return nil
}

// FindRequestByID returns the request with that ID, or nil.
func (d *Database) FindRequestByID(id int) *Request {
	for i := range d.Requests {
		if d.Requests[i].ID == id {
			return &d.Requests[i]
		}
	}
	return nil
}
