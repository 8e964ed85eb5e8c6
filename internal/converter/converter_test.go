package converter

import (
	"encoding/json"
	"testing"
	"time"

	"clinic-records-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() *entity.User {
	return &entity.User{
		ID:        "u1",
		IDType:    "CC",
		IDNumber:  1020,
		Name:      "Ana",
		Lastname:  "Pérez",
		BirthDate: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		Gender:    "F",
		BloodType: "O",
		Rh:        "+",
		EPS:       "Sura",
		Roles:     []string{"Patient"},
		Active:    true,
		Email:     "ana@example.com",
		Password:  "$2a$10$hash",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func toMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestUserToResponse_HidesSecrets(t *testing.T) {
	out := toMap(t, UserToResponse(sampleUser()))

	assert.Equal(t, "u1", out["id"])
	assert.Equal(t, "Ana", out["name"])
	assert.Equal(t, float64(1020), out["idNumber"])
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "active")
	assert.NotContains(t, out, "secLastname")
}

func TestUserToResponse_Nil(t *testing.T) {
	assert.Nil(t, UserToResponse(nil))
}

func TestLabTestToResponse_MergesOwnerProfile(t *testing.T) {
	test := &entity.LabTest{
		ID:        "t1",
		UserID:    "u1",
		Reference: "R-001",
		Result:    "negative",
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	out := toMap(t, LabTestToResponse(test, sampleUser()))

	assert.Equal(t, "t1", out["id"])
	assert.Equal(t, "u1", out["user"])
	assert.Equal(t, "R-001", out["reference"])
	assert.Equal(t, "Ana", out["name"])
	assert.Equal(t, "ana@example.com", out["email"])
	assert.Equal(t, "2024-02-01T00:00:00Z", out["createdAt"])
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "active")
}

func TestLabTestToResponse_WithoutOwner(t *testing.T) {
	out := toMap(t, LabTestToResponse(&entity.LabTest{ID: "t1", UserID: "gone", Reference: "R", Result: "x"}, nil))

	assert.Equal(t, "gone", out["user"])
	assert.NotContains(t, out, "name")
	assert.NotContains(t, out, "email")
}
