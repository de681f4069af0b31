package directory

import (
	"fmt"

	"github.com/angelmondragon/salonadmin/pkg/pagination"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

// ActiveFilter narrows employees by their active flag.
type ActiveFilter string

const (
	ActiveAll      ActiveFilter = ""
	ActiveOnly     ActiveFilter = "active"
	ActiveInactive ActiveFilter = "inactive"
)

// ParseActiveFilter accepts "", "all", "active" and "inactive".
func ParseActiveFilter(value string) (ActiveFilter, error) {
	switch value {
	case "", "all":
		return ActiveAll, nil
	case string(ActiveOnly):
		return ActiveOnly, nil
	case string(ActiveInactive):
		return ActiveInactive, nil
	default:
		return "", fmt.Errorf("invalid active filter %q", value)
	}
}

// EmployeeQuery narrows the staff directory. Zero values mean no filter.
type EmployeeQuery struct {
	Search string
	Active ActiveFilter
	Page   pagination.Params
}

// EmployeeSummary counts the filtered staff, not the raw listing.
type EmployeeSummary struct {
	Count  int `json:"count"`
	Active int `json:"active"`
}

// EmployeeDirectory is one page of the reconciled staff list plus its summary.
type EmployeeDirectory struct {
	Employees []salon.Employee `json:"employees"`
	Summary   EmployeeSummary  `json:"summary"`
	Page      pagination.Info  `json:"page"`
}

func employeeKey(e salon.Employee) int64 {
	return e.ID
}

func employeeSearchFields(e salon.Employee) []string {
	return []string{e.Name, e.Email, e.Role, deref(e.Specialty)}
}

// DeduplicateEmployees keeps the first record per employee id.
func DeduplicateEmployees(records []salon.Employee) []salon.Employee {
	return Deduplicate(records, employeeKey)
}

// SearchEmployees matches term against name, email, role and specialty.
func SearchEmployees(records []salon.Employee, term string) []salon.Employee {
	return FilterBySearch(records, term, employeeSearchFields)
}

// FilterByActive keeps active or inactive staff. ActiveAll keeps everyone.
func FilterByActive(records []salon.Employee, filter ActiveFilter) []salon.Employee {
	if filter == ActiveAll {
		return records
	}
	want := filter == ActiveOnly
	return Filter(records, func(e salon.Employee) bool {
		return e.IsActive == want
	})
}

// SummarizeEmployees counts records and how many of them are active.
func SummarizeEmployees(records []salon.Employee) EmployeeSummary {
	summary := EmployeeSummary{Count: len(records)}
	for _, e := range records {
		if e.IsActive {
			summary.Active++
		}
	}
	return summary
}

// ReconcileEmployees builds the employee view. Missing colors are defaulted on the
// returned copies only.
func ReconcileEmployees(records []salon.Employee, query EmployeeQuery) EmployeeDirectory {
	view := DeduplicateEmployees(records)
	view = SearchEmployees(view, query.Search)
	view = FilterByActive(view, query.Active)

	summary := SummarizeEmployees(view)
	page, info := pagination.Slice(view, query.Page)

	employees := make([]salon.Employee, len(page))
	for i, e := range page {
		e.Color = e.ColorOrDefault()
		employees[i] = e
	}
	return EmployeeDirectory{
		Employees: employees,
		Summary:   summary,
		Page:      info,
	}
}
