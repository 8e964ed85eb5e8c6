package usecase

import (
	"context"
	"io"
	"testing"

	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
	"clinic-records-api/internal/domain/repository"
	"clinic-records-api/internal/repository/memory"
	"clinic-records-api/internal/service"
	"clinic-records-api/pkg/hash"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// countingUserRepo counts inserts reaching the store.
type countingUserRepo struct {
	repository.UserRepository
	creates int
}

func (r *countingUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.creates++
	return r.UserRepository.Create(ctx, user)
}

// countingLabTestRepo counts inserts reaching the store.
type countingLabTestRepo struct {
	repository.LabTestRepository
	creates int
}

func (r *countingLabTestRepo) Create(ctx context.Context, test *entity.LabTest) error {
	r.creates++
	return r.LabTestRepository.Create(ctx, test)
}

type fixture struct {
	store    *repository.Store
	users    *countingUserRepo
	labTests *countingLabTestRepo
	hasher   *hash.PasswordHasher
	userUC   UserUsecase
	testUC   LabTestUsecase
}

func newFixture(t *testing.T, emptyListAsError bool) *fixture {
	t.Helper()

	store, err := memory.NewStore()
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	users := &countingUserRepo{UserRepository: store.Users}
	labTests := &countingLabTestRepo{LabTestRepository: store.LabTests}
	hasher := hash.NewPasswordHasher(bcrypt.MinCost)
	audit := service.NewAuditService(log)

	return &fixture{
		store:    store,
		users:    users,
		labTests: labTests,
		hasher:   hasher,
		userUC:   NewUserUsecase(log, users, labTests, audit, hasher, emptyListAsError),
		testUC:   NewLabTestUsecase(log, labTests, users, audit, emptyListAsError),
	}
}

func createUserRequest(idNumber int64, email string) *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		IDType:    "CC",
		IDNumber:  idNumber,
		Name:      "Ana",
		Lastname:  "Pérez",
		BirthDate: "1990-05-17",
		Gender:    "F",
		BloodType: "O",
		Rh:        "+",
		EPS:       "Sura",
		Roles:     []string{"Patient"},
		Email:     email,
		Password:  "secret-1",
	}
}

func replaceUserRequest(id string, from *dto.CreateUserRequest, active bool) *dto.ReplaceUserRequest {
	return &dto.ReplaceUserRequest{
		ID:        id,
		IDType:    from.IDType,
		IDNumber:  from.IDNumber,
		Name:      from.Name,
		Lastname:  from.Lastname,
		BirthDate: from.BirthDate,
		Gender:    from.Gender,
		BloodType: from.BloodType,
		Rh:        from.Rh,
		EPS:       from.EPS,
		Roles:     from.Roles,
		Active:    &active,
		Email:     from.Email,
	}
}
