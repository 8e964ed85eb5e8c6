package usecase

import (
	"context"
	"errors"

	"clinic-records-api/internal/converter"
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
	"clinic-records-api/internal/domain/repository"
	"clinic-records-api/internal/service"
	"clinic-records-api/pkg/apperror"
	"clinic-records-api/pkg/messages"

	"github.com/sirupsen/logrus"
)

var (
	ErrLabTestsEmpty        = apperror.New(apperror.NotFound, messages.TestsEmpty)
	ErrLabTestNotFound      = apperror.New(apperror.NotFound, messages.TestNotFound)
	ErrLabTestOwnerNotFound = apperror.New(apperror.NotFound, messages.TestOwnerNotFound)
	ErrLabTestAlreadyExists = apperror.New(apperror.Conflict, messages.TestAlreadyExists)
	ErrDuplicateReference   = apperror.New(apperror.Conflict, messages.TestDuplicateRef)
)

type LabTestUsecase interface {
	// List returns every test merged with its owner's public profile.
	List(ctx context.Context) ([]dto.LabTestResponse, error)
	Create(ctx context.Context, req *dto.CreateLabTestRequest) (*dto.LabTestResponse, error)
	Replace(ctx context.Context, req *dto.ReplaceLabTestRequest) (*dto.LabTestResponse, error)
	Delete(ctx context.Context, id string) (*dto.LabTestResponse, error)
}

type labTestUsecase struct {
	log              *logrus.Logger
	labTestRepo      repository.LabTestRepository
	userRepo         repository.UserRepository
	auditService     service.AuditService
	emptyListAsError bool
}

func NewLabTestUsecase(
	log *logrus.Logger,
	labTestRepo repository.LabTestRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	emptyListAsError bool,
) LabTestUsecase {
	return &labTestUsecase{
		log:              log,
		labTestRepo:      labTestRepo,
		userRepo:         userRepo,
		auditService:     auditService,
		emptyListAsError: emptyListAsError,
	}
}

func (u *labTestUsecase) List(ctx context.Context) ([]dto.LabTestResponse, error) {
	tests, err := u.labTestRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list tests: %+v", err)
		return nil, err
	}
	if len(tests) == 0 && u.emptyListAsError {
		return nil, ErrLabTestsEmpty
	}

	// Several tests usually share an owner.
	owners := make(map[string]*entity.User)
	responses := make([]dto.LabTestResponse, 0, len(tests))
	for i := range tests {
		test := &tests[i]

		owner, seen := owners[test.UserID]
		if !seen {
			owner, err = u.userRepo.FindByID(ctx, test.UserID)
			if err != nil {
				u.log.Warnf("Failed to find owner of test %s: %+v", test.ID, err)
				return nil, err
			}
			if owner == nil {
				u.log.WithField("test_id", test.ID).Warn("Test owner no longer exists")
			}
			owners[test.UserID] = owner
		}

		responses = append(responses, *converter.LabTestToResponse(test, owner))
	}

	return responses, nil
}

func (u *labTestUsecase) Create(ctx context.Context, req *dto.CreateLabTestRequest) (*dto.LabTestResponse, error) {
	if err := u.ensureOwner(ctx, req.User); err != nil {
		return nil, err
	}

	existing, err := u.labTestRepo.FindByReference(ctx, req.Reference)
	if err != nil {
		u.log.Warnf("Failed to find test by reference: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrLabTestAlreadyExists
	}

	test := &entity.LabTest{
		UserID:    req.User,
		Reference: req.Reference,
		Result:    req.Result,
	}

	if err := u.labTestRepo.Create(ctx, test); err != nil {
		var dup *repository.DuplicateKeyError
		if errors.As(err, &dup) {
			return nil, ErrLabTestAlreadyExists
		}
		u.log.Warnf("Failed to create test: %+v", err)
		return nil, err
	}

	res := converter.LabTestToResponse(test, nil)
	u.auditService.LogCreate(ctx, service.AuditActionLabTestCreate, "lab_test", test.ID, res)

	return res, nil
}

func (u *labTestUsecase) Replace(ctx context.Context, req *dto.ReplaceLabTestRequest) (*dto.LabTestResponse, error) {
	test, err := u.labTestRepo.FindByID(ctx, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}

	if err := u.ensureOwner(ctx, req.User); err != nil {
		return nil, err
	}

	other, err := u.labTestRepo.FindByReference(ctx, req.Reference)
	if err != nil {
		u.log.Warnf("Failed to find test by reference: %+v", err)
		return nil, err
	}
	if other != nil && other.ID != test.ID {
		return nil, ErrDuplicateReference
	}

	oldValue := converter.LabTestToResponse(test, nil)

	test.UserID = req.User
	test.Reference = req.Reference
	test.Result = req.Result

	if err := u.labTestRepo.Update(ctx, test); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLabTestNotFound
		}
		var dup *repository.DuplicateKeyError
		if errors.As(err, &dup) {
			return nil, ErrDuplicateReference
		}
		u.log.Warnf("Failed to update test: %+v", err)
		return nil, err
	}

	res := converter.LabTestToResponse(test, nil)
	u.auditService.LogUpdate(ctx, service.AuditActionLabTestUpdate, "lab_test", test.ID, oldValue, res)

	return res, nil
}

func (u *labTestUsecase) Delete(ctx context.Context, id string) (*dto.LabTestResponse, error) {
	test, err := u.labTestRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrLabTestNotFound
	}

	if err := u.labTestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLabTestNotFound
		}
		u.log.Warnf("Failed to delete test: %+v", err)
		return nil, err
	}

	res := converter.LabTestToResponse(test, nil)
	u.auditService.LogDelete(ctx, service.AuditActionLabTestDelete, "lab_test", test.ID, res)

	return res, nil
}

func (u *labTestUsecase) ensureOwner(ctx context.Context, userID string) error {
	owner, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find test owner: %+v", err)
		return err
	}
	if owner == nil {
		return ErrLabTestOwnerNotFound
	}
	return nil
}
