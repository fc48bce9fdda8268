package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	LastName  string
	Cedula    string
	Email     *string
	Phone     *string
	IsAdmin   bool
	SedeID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns "Name LastName".
func (e Employee) FullName() string {
	return e.Name + " " + e.LastName
}
