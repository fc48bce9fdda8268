package fixtures

import (
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/sede"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// ==========================================
// DEFAULT SEDES
// ==========================================

// MainSedeName is the sede the bootstrap admin is assigned to.
const MainSedeName = "Sede Principal"

// GetDefaultSedes returns the sites created on a fresh install.
func GetDefaultSedes() []sede.Sede {
	return []sede.Sede{
		{
			Name:        MainSedeName,
			Address:     strPtr("Calle 123 #45-67"),
			Coordinates: strPtr("6.2442, -75.5812"),
			IsActive:    true,
		},
		{
			Name:        "Sede Norte",
			Address:     strPtr("Avenida 80 #30-20"),
			Coordinates: strPtr("6.2947, -75.5859"),
			IsActive:    true,
		},
	}
}

// ==========================================
// DEFAULT ADMIN
// ==========================================

type AdminDefaults struct {
	Cedula   string
	Name     string
	LastName string
}

// GetDefaultAdmin returns the first administrator. sedeID may be empty.
func GetDefaultAdmin(admin AdminDefaults, sedeID string) employee.Employee {
	emp := employee.Employee{
		Cedula:   admin.Cedula,
		Name:     admin.Name,
		LastName: admin.LastName,
		IsAdmin:  true,
	}
	if sedeID != "" {
		emp.SedeID = strPtr(sedeID)
	}
	return emp
}
