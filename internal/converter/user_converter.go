package converter

import (
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
)

// UserToProfile converts a User entity to its public profile. Password and
// active are never part of it.
func UserToProfile(user *entity.User) dto.UserProfile {
	return dto.UserProfile{
		IDType:              user.IDType,
		IDNumber:            user.IDNumber,
		Name:                user.Name,
		Lastname:            user.Lastname,
		SecLastname:         user.SecLastname,
		BirthDate:           user.BirthDate,
		Gender:              user.Gender,
		BloodType:           user.BloodType,
		Rh:                  user.Rh,
		MaritalStatus:       user.MaritalStatus,
		EPS:                 user.EPS,
		HomePhone:           user.HomePhone,
		MobilePhone:         user.MobilePhone,
		WorkPhone:           user.WorkPhone,
		Address:             user.Address,
		City:                user.City,
		Department:          user.Department,
		Roles:               append([]string(nil), user.Roles...),
		Email:               user.Email,
		ContactName:         user.ContactName,
		ContactLastname:     user.ContactLastname,
		ContactSecLastname:  user.ContactSecLastname,
		ContactRelationship: user.ContactRelationship,
		ContactPhone:        user.ContactPhone,
	}
}

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:          user.ID,
		UserProfile: UserToProfile(user),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}
