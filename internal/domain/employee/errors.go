package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCedulaExists     = errors.New("cedula already registered")
	ErrCedulaImmutable  = errors.New("cedula cannot be changed")
	ErrEmployeeInUse    = errors.New("employee has time records")
	ErrInvalidCedula    = errors.New("cedula must be 5 to 15 digits")
)
