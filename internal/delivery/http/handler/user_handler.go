package handler

import (
	"net/http"

	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/usecase"
	"clinic-records-api/pkg/messages"
	"clinic-records-api/pkg/response"
	"clinic-records-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log         *logrus.Logger
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
	messages    *messages.Catalog
}

func NewUserHandler(log *logrus.Logger, userUsecase usecase.UserUsecase, validator *validator.CustomValidator, catalog *messages.Catalog) *UserHandler {
	return &UserHandler{
		log:         log,
		userUsecase: userUsecase,
		validator:   validator,
		messages:    catalog,
	}
}

// ListUsers handles listing every user
// @Summary List users
// @Description List all users without password or active flag
// @Tags Users
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, h.messages, err)
		return
	}

	response.Success(w, http.StatusOK, h.messages.Get(messages.UsersListed), users)
}

// CreateUser handles user creation
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, h.messages.Get(messages.InvalidRequestBody))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.messages.Get(messages.UserRequiredFields), h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, h.messages, err)
		return
	}

	response.Success(w, http.StatusCreated, h.messages.Format(messages.UserCreated, user.Name, user.Lastname), user)
}

// ReplaceUser handles a full resubmission of an existing user
// @Summary Replace a user
// @Description Every field is resubmitted; password may be omitted to keep the current one
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.ReplaceUserRequest true "Replace User Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [patch]
func (h *UserHandler) ReplaceUser(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceUserRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, h.messages.Get(messages.InvalidRequestBody))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.messages.Get(messages.UserRequiredFields), h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Replace(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, h.messages, err)
		return
	}

	response.Success(w, http.StatusOK, h.messages.Format(messages.UserUpdated, user.Name, user.Lastname), user)
}

// DeleteUser handles user deletion
// @Summary Delete a user
// @Description Fails while any test still references the user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Delete Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /users [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, h.messages.Get(messages.InvalidRequestBody))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.messages.Get(messages.UserIDRequired), h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Delete(r.Context(), req.ID)
	if err != nil {
		writeError(w, r, h.log, h.messages, err)
		return
	}

	response.Success(w, http.StatusOK, h.messages.Format(messages.UserDeleted, user.Name, user.Lastname, user.IDNumber), user)
}
