package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-records-api/internal/converter"
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
	"clinic-records-api/internal/domain/repository"
	"clinic-records-api/internal/service"
	"clinic-records-api/pkg/apperror"
	"clinic-records-api/pkg/hash"
	"clinic-records-api/pkg/messages"

	"github.com/sirupsen/logrus"
)

var (
	ErrUsersEmpty        = apperror.New(apperror.NotFound, messages.UsersEmpty)
	ErrUserNotFound      = apperror.New(apperror.NotFound, messages.UserNotFound)
	ErrUserAlreadyExists = apperror.New(apperror.Conflict, messages.UserAlreadyExists)
	ErrUserEmailExists   = apperror.New(apperror.Conflict, messages.UserEmailExists)
	ErrDuplicateIDNumber = apperror.New(apperror.Conflict, messages.UserDuplicateIDNumber)
	ErrUserHasTests      = apperror.New(apperror.ReferentialIntegrity, messages.UserHasTests)
	ErrInvalidBirthDate  = apperror.New(apperror.Validation, messages.UserInvalidBirthDate)
)

// Accepted birthDate layouts, tried in order.
var birthDateLayouts = []string{"2006-01-02", time.RFC3339}

type UserUsecase interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Replace(ctx context.Context, req *dto.ReplaceUserRequest) (*dto.UserResponse, error)
	// Delete returns the removed user so callers can describe it.
	Delete(ctx context.Context, id string) (*dto.UserResponse, error)
}

type userUsecase struct {
	log              *logrus.Logger
	userRepo         repository.UserRepository
	labTestRepo      repository.LabTestRepository
	auditService     service.AuditService
	hasher           *hash.PasswordHasher
	emptyListAsError bool
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	labTestRepo repository.LabTestRepository,
	auditService service.AuditService,
	hasher *hash.PasswordHasher,
	emptyListAsError bool,
) UserUsecase {
	return &userUsecase{
		log:              log,
		userRepo:         userRepo,
		labTestRepo:      labTestRepo,
		auditService:     auditService,
		hasher:           hasher,
		emptyListAsError: emptyListAsError,
	}
}

func (u *userUsecase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	if len(users) == 0 && u.emptyListAsError {
		return nil, ErrUsersEmpty
	}

	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByIDNumber(ctx, req.IDNumber)
	if err != nil {
		u.log.Warnf("Failed to find user by id number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	existing, err = u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserEmailExists
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		IDType:              req.IDType,
		IDNumber:            req.IDNumber,
		Name:                req.Name,
		Lastname:            req.Lastname,
		SecLastname:         req.SecLastname,
		BirthDate:           birthDate,
		Gender:              req.Gender,
		BloodType:           req.BloodType,
		Rh:                  req.Rh,
		MaritalStatus:       req.MaritalStatus,
		EPS:                 req.EPS,
		HomePhone:           req.HomePhone,
		MobilePhone:         req.MobilePhone,
		WorkPhone:           req.WorkPhone,
		Address:             req.Address,
		City:                req.City,
		Department:          req.Department,
		Roles:               req.Roles,
		Active:              true,
		Email:               req.Email,
		Password:            hashedPassword,
		ContactName:         req.ContactName,
		ContactLastname:     req.ContactLastname,
		ContactSecLastname:  req.ContactSecLastname,
		ContactRelationship: req.ContactRelationship,
		ContactPhone:        req.ContactPhone,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		var dup *repository.DuplicateKeyError
		if errors.As(err, &dup) {
			if dup.Field == repository.FieldEmail {
				return nil, ErrUserEmailExists
			}
			return nil, ErrUserAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	res := converter.UserToResponse(user)
	u.auditService.LogCreate(ctx, service.AuditActionUserCreate, "user", user.ID, res)

	return res, nil
}

func (u *userUsecase) Replace(ctx context.Context, req *dto.ReplaceUserRequest) (*dto.UserResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(ctx, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	other, err := u.userRepo.FindByIDNumber(ctx, req.IDNumber)
	if err != nil {
		u.log.Warnf("Failed to find user by id number: %+v", err)
		return nil, err
	}
	if other != nil && other.ID != user.ID {
		return nil, ErrDuplicateIDNumber
	}

	other, err = u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if other != nil && other.ID != user.ID {
		return nil, ErrUserEmailExists
	}

	oldValue := converter.UserToResponse(user)

	if req.Password != "" {
		hashedPassword, err := u.hasher.Hash(req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = hashedPassword
	}

	user.IDType = req.IDType
	user.IDNumber = req.IDNumber
	user.Name = req.Name
	user.Lastname = req.Lastname
	user.SecLastname = req.SecLastname
	user.BirthDate = birthDate
	user.Gender = req.Gender
	user.BloodType = req.BloodType
	user.Rh = req.Rh
	user.MaritalStatus = req.MaritalStatus
	user.EPS = req.EPS
	user.HomePhone = req.HomePhone
	user.MobilePhone = req.MobilePhone
	user.WorkPhone = req.WorkPhone
	user.Address = req.Address
	user.City = req.City
	user.Department = req.Department
	user.Roles = req.Roles
	user.Active = *req.Active
	user.Email = req.Email
	user.ContactName = req.ContactName
	user.ContactLastname = req.ContactLastname
	user.ContactSecLastname = req.ContactSecLastname
	user.ContactRelationship = req.ContactRelationship
	user.ContactPhone = req.ContactPhone

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		var dup *repository.DuplicateKeyError
		if errors.As(err, &dup) {
			if dup.Field == repository.FieldEmail {
				return nil, ErrUserEmailExists
			}
			return nil, ErrDuplicateIDNumber
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	res := converter.UserToResponse(user)
	u.auditService.LogUpdate(ctx, service.AuditActionUserUpdate, "user", user.ID, oldValue, res)

	return res, nil
}

func (u *userUsecase) Delete(ctx context.Context, id string) (*dto.UserResponse, error) {
	owned, err := u.labTestRepo.FindOneByUser(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find tests of user: %+v", err)
		return nil, err
	}
	if owned != nil {
		return nil, ErrUserHasTests
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to delete user: %+v", err)
		return nil, err
	}

	res := converter.UserToResponse(user)
	u.auditService.LogDelete(ctx, service.AuditActionUserDelete, "user", user.ID, res)

	return res, nil
}

func parseBirthDate(value string) (time.Time, error) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			// The calendar day in the offset the caller wrote, at UTC midnight.
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidBirthDate
}
