package sede

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestCreateSedeRequest_Validate(t *testing.T) {
	req := CreateSedeRequest{Name: "Principal", Coordinates: strPtr("4.7110, -74.0721")}
	require.NoError(t, req.Validate())
	assert.True(t, req.Active())

	req = CreateSedeRequest{Name: "", Coordinates: strPtr("north")}
	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "coordinates")
}

func TestCreateSedeRequest_BlankCoordinatesCleared(t *testing.T) {
	req := CreateSedeRequest{Name: "Norte", Coordinates: strPtr("  ")}
	require.NoError(t, req.Validate())
	assert.Nil(t, req.Coordinates)
}

func TestUpdateSedeRequest_Validate(t *testing.T) {
	inactive := false
	req := UpdateSedeRequest{ID: "s1", Coordinates: strPtr(""), IsActive: &inactive}
	assert.NoError(t, req.Validate())

	req = UpdateSedeRequest{Name: strPtr(" ")}
	err := req.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "id")
	assert.Contains(t, verrs.ToMap(), "name")
}
