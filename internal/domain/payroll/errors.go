package payroll

import "errors"

// NoEmployeesMessage is returned, not raised, when generation finds no employees.
const NoEmployeesMessage = "No employees found"

var ErrUnsupportedExportFormat = errors.New("unsupported export format")
