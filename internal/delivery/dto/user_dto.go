package dto

import "time"

// Request DTOs

type CreateUserRequest struct {
	IDType      string `json:"idType" validate:"required"`
	IDNumber    int64  `json:"idNumber" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Lastname    string `json:"lastname" validate:"required"`
	SecLastname string `json:"secLastname"`

	BirthDate     string `json:"birthDate" validate:"required"` // YYYY-MM-DD or RFC3339
	Gender        string `json:"gender" validate:"required"`
	BloodType     string `json:"bloodType" validate:"required"`
	Rh            string `json:"rh" validate:"required"`
	MaritalStatus string `json:"maritalStatus"`
	EPS           string `json:"eps" validate:"required"`

	HomePhone   int64  `json:"homePhone"`
	MobilePhone int64  `json:"mobilePhone"`
	WorkPhone   int64  `json:"workPhone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Department  string `json:"department"`

	Roles    []string `json:"roles" validate:"required,min=1,dive,required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`

	ContactName         string `json:"contactName"`
	ContactLastname     string `json:"contactLastname"`
	ContactSecLastname  string `json:"contactSecLastname"`
	ContactRelationship string `json:"contactRelationship"`
	ContactPhone        int64  `json:"contactPhone"`
}

// ReplaceUserRequest resubmits every field of an existing user. Password is
// optional: when empty the stored hash is kept.
type ReplaceUserRequest struct {
	ID          string `json:"id" validate:"required"`
	IDType      string `json:"idType" validate:"required"`
	IDNumber    int64  `json:"idNumber" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Lastname    string `json:"lastname" validate:"required"`
	SecLastname string `json:"secLastname"`

	BirthDate     string `json:"birthDate" validate:"required"`
	Gender        string `json:"gender" validate:"required"`
	BloodType     string `json:"bloodType" validate:"required"`
	Rh            string `json:"rh" validate:"required"`
	MaritalStatus string `json:"maritalStatus"`
	EPS           string `json:"eps" validate:"required"`

	HomePhone   int64  `json:"homePhone"`
	MobilePhone int64  `json:"mobilePhone"`
	WorkPhone   int64  `json:"workPhone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Department  string `json:"department"`

	Roles    []string `json:"roles" validate:"required,min=1,dive,required"`
	Active   *bool    `json:"active" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password"`

	ContactName         string `json:"contactName"`
	ContactLastname     string `json:"contactLastname"`
	ContactSecLastname  string `json:"contactSecLastname"`
	ContactRelationship string `json:"contactRelationship"`
	ContactPhone        int64  `json:"contactPhone"`
}

// DeleteRequest carries the id of the record to delete in the request body.
type DeleteRequest struct {
	ID string `json:"id" validate:"required"`
}

// Response DTOs

// UserProfile is the public view of a user without identity or bookkeeping
// fields. It is merged into lab test listings.
type UserProfile struct {
	IDType      string `json:"idType"`
	IDNumber    int64  `json:"idNumber"`
	Name        string `json:"name"`
	Lastname    string `json:"lastname"`
	SecLastname string `json:"secLastname,omitempty"`

	BirthDate     time.Time `json:"birthDate"`
	Gender        string    `json:"gender"`
	BloodType     string    `json:"bloodType"`
	Rh            string    `json:"rh"`
	MaritalStatus string    `json:"maritalStatus,omitempty"`
	EPS           string    `json:"eps"`

	HomePhone   int64  `json:"homePhone,omitempty"`
	MobilePhone int64  `json:"mobilePhone,omitempty"`
	WorkPhone   int64  `json:"workPhone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Department  string `json:"department,omitempty"`

	Roles []string `json:"roles"`
	Email string   `json:"email"`

	ContactName         string `json:"contactName,omitempty"`
	ContactLastname     string `json:"contactLastname,omitempty"`
	ContactSecLastname  string `json:"contactSecLastname,omitempty"`
	ContactRelationship string `json:"contactRelationship,omitempty"`
	ContactPhone        int64  `json:"contactPhone,omitempty"`
}

type UserResponse struct {
	ID string `json:"id"`
	UserProfile
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
