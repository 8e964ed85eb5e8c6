package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_ApplyDefaults(t *testing.T) {
	u := &User{}
	u.ApplyDefaults()
	assert.Equal(t, []string{RolePatient}, u.Roles)

	u = &User{Roles: []string{"Doctor"}}
	u.ApplyDefaults()
	assert.Equal(t, []string{"Doctor"}, u.Roles)
}

func TestUser_CloneDoesNotShareRoles(t *testing.T) {
	u := &User{ID: "u1", Roles: []string{"Patient"}}
	c := u.Clone()
	c.Roles[0] = "Admin"

	assert.Equal(t, "Patient", u.Roles[0])
}

func TestLabTest_Clone(t *testing.T) {
	test := &LabTest{ID: "t1", UserID: "u1", Reference: "R1", Result: "negative"}
	c := test.Clone()
	c.Result = "positive"

	assert.Equal(t, "negative", test.Result)
	assert.Equal(t, "tests", LabTest{}.TableName())
}
