// Package employee provides the Employee aggregate and the roles employees
// hold.
//
// Roles are shared capabilities ("DRIVER", "SALES", "TECH"). An employee
// references any number of roles and a role is referenced by any number
// of employees; neither owns the other. Role names are compared without
// regard to letter case, so an employee holding "Driver" is a driver.
package employee
