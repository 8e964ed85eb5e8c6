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

type LabTestHandler struct {
	log            *logrus.Logger
	labTestUsecase usecase.LabTestUsecase
	validator      *validator.CustomValidator
	messages       *messages.Catalog
}

func NewLabTestHandler(log *logrus.Logger, labTestUsecase usecase.LabTestUsecase, validator *validator.CustomValidator, catalog *messages.Catalog) *LabTestHandler {
	return &LabTestHandler{
		log:            log,
		labTestUsecase: labTestUsecase,
		validator:      validator,
		messages:       catalog,
	}
}

// ListLabTests handles listing every test with its owner's profile
// @Summary List tests
// @Tags Tests
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /tests [get]
func (h *LabTestHandler) ListLabTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.labTestUsecase.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, h.messages, err)
		return
	}

	response.Success(w, http.StatusOK, h.messages.Get(messages.TestsListed), tests)
}

// CreateLabTest handles test creation
// @Summary Create a test
// @Tags Tests
// @Accept json
// @Produce json
// @Param request body dto.CreateLabTestRequest true "Create Test Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /tests [post]
func (h *LabTestHandler) CreateLabTest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabTestRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, h.messages.Get(messages.InvalidRequestBody))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.messages.Get(messages.TestRequiredFields), h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.labTestUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, h.messages, err)
		return
	}

	response.Success(w, http.StatusCreated, h.messages.Get(messages.TestCreated), test)
}

// ReplaceLabTest handles a full resubmission of an existing test
// @Summary Replace a test
// @Tags Tests
// @Accept json
// @Produce json
// @Param request body dto.ReplaceLabTestRequest true "Replace Test Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /tests [patch]
func (h *LabTestHandler) ReplaceLabTest(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceLabTestRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, h.messages.Get(messages.InvalidRequestBody))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.messages.Get(messages.TestRequiredFields), h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.labTestUsecase.Replace(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, h.messages, err)
		return
	}

	response.Success(w, http.StatusOK, h.messages.Format(messages.TestUpdated, test.Reference), test)
}

// DeleteLabTest handles test deletion
// @Summary Delete a test
// @Tags Tests
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Delete Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /tests [delete]
func (h *LabTestHandler) DeleteLabTest(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, h.messages.Get(messages.InvalidRequestBody))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.messages.Get(messages.TestIDRequired), h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.labTestUsecase.Delete(r.Context(), req.ID)
	if err != nil {
		writeError(w, r, h.log, h.messages, err)
		return
	}

	response.Success(w, http.StatusOK, h.messages.Format(messages.TestDeleted, test.Reference), test)
}
