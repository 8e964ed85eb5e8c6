package entity

import (
	"time"
)

// User is a patient or staff account. IDNumber and Email are unique across
// all users; Password only ever holds a bcrypt hash.
type User struct {
	ID       string `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	IDType   string `gorm:"type:varchar(50);not null" bson:"idType" json:"idType"`
	IDNumber int64  `gorm:"not null;uniqueIndex:idx_users_id_number" bson:"idNumber" json:"idNumber"`

	Name        string `gorm:"type:varchar(255);not null" bson:"name" json:"name"`
	Lastname    string `gorm:"type:varchar(255);not null" bson:"lastname" json:"lastname"`
	SecLastname string `gorm:"type:varchar(255)" bson:"secLastname,omitempty" json:"secLastname,omitempty"`

	BirthDate     time.Time `gorm:"type:date;not null" bson:"birthDate" json:"birthDate"`
	Gender        string    `gorm:"type:varchar(50);not null" bson:"gender" json:"gender"`
	BloodType     string    `gorm:"type:varchar(10);not null" bson:"bloodType" json:"bloodType"`
	Rh            string    `gorm:"type:varchar(10);not null" bson:"rh" json:"rh"`
	MaritalStatus string    `gorm:"type:varchar(50)" bson:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`
	EPS           string    `gorm:"column:eps;type:varchar(255);not null" bson:"eps" json:"eps"`

	HomePhone   int64  `bson:"homePhone,omitempty" json:"homePhone,omitempty"`
	MobilePhone int64  `bson:"mobilePhone,omitempty" json:"mobilePhone,omitempty"`
	WorkPhone   int64  `bson:"workPhone,omitempty" json:"workPhone,omitempty"`
	Address     string `gorm:"type:text" bson:"address,omitempty" json:"address,omitempty"`
	City        string `gorm:"type:varchar(255)" bson:"city,omitempty" json:"city,omitempty"`
	Department  string `gorm:"type:varchar(255)" bson:"department,omitempty" json:"department,omitempty"`

	Roles    []string `gorm:"serializer:json;type:jsonb;not null" bson:"roles" json:"roles"`
	Active   bool     `gorm:"not null" bson:"active" json:"-"`
	Email    string   `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" bson:"email" json:"email"`
	Password string   `gorm:"type:text;not null" bson:"password" json:"-"`

	ContactName         string `gorm:"type:varchar(255)" bson:"contactName,omitempty" json:"contactName,omitempty"`
	ContactLastname     string `gorm:"type:varchar(255)" bson:"contactLastname,omitempty" json:"contactLastname,omitempty"`
	ContactSecLastname  string `gorm:"type:varchar(255)" bson:"contactSecLastname,omitempty" json:"contactSecLastname,omitempty"`
	ContactRelationship string `gorm:"type:varchar(100)" bson:"contactRelationship,omitempty" json:"contactRelationship,omitempty"`
	ContactPhone        int64  `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" bson:"updatedAt" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// ApplyDefaults fills the schema defaults a store applies on insert.
func (u *User) ApplyDefaults() {
	if len(u.Roles) == 0 {
		u.Roles = []string{RolePatient}
	}
}

// Clone returns a copy that shares no mutable state with u.
func (u *User) Clone() *User {
	c := *u
	c.Roles = append([]string(nil), u.Roles...)
	return &c
}
