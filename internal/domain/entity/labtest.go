package entity

import (
	"time"
)

// LabTest is a lab result owned by a User. Reference is unique across all
// tests. Deleting a LabTest never touches its owner.
type LabTest struct {
	ID        string    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;not null;index" bson:"user" json:"user"`
	Reference string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tests_reference" bson:"reference" json:"reference"`
	Result    string    `gorm:"type:text;not null" bson:"result" json:"result"`
	CreatedAt time.Time `gorm:"autoCreateTime" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" bson:"updatedAt" json:"updatedAt"`
}

func (LabTest) TableName() string {
	return "tests"
}

func (t *LabTest) Clone() *LabTest {
	c := *t
	return &c
}
