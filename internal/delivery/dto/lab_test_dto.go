package dto

import "time"

type CreateLabTestRequest struct {
	User      string `json:"user" validate:"required"`
	Reference string `json:"reference" validate:"required"`
	Result    string `json:"result" validate:"required"`
}

type ReplaceLabTestRequest struct {
	ID        string `json:"id" validate:"required"`
	User      string `json:"user" validate:"required"`
	Reference string `json:"reference" validate:"required"`
	Result    string `json:"result" validate:"required"`
}

// LabTestResponse is a lab test, optionally flattened together with its
// owner's profile. The two field sets never collide.
type LabTestResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Reference string    `json:"reference"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	*UserProfile
}
