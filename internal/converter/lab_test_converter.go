package converter

import (
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
)

// LabTestToResponse converts a LabTest entity to LabTestResponse DTO.
// When owner is not nil its profile is merged into the response.
func LabTestToResponse(test *entity.LabTest, owner *entity.User) *dto.LabTestResponse {
	if test == nil {
		return nil
	}

	response := &dto.LabTestResponse{
		ID:        test.ID,
		User:      test.UserID,
		Reference: test.Reference,
		Result:    test.Result,
		CreatedAt: test.CreatedAt,
		UpdatedAt: test.UpdatedAt,
	}

	if owner != nil {
		profile := UserToProfile(owner)
		response.UserProfile = &profile
	}

	return response
}
