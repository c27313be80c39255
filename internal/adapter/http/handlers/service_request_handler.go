package handlers

import (
	"errors"
	"net/http"

	request "firex_service/internal/adapter/http/dto/request"
	response "firex_service/internal/adapter/http/dto/response"
	"firex_service/internal/domain/entities"
	"firex_service/internal/usecase"
	"firex_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid service request payload", http.StatusBadRequest)
	errMissingIdentity       = pkg.NewDomainErrorSimple("MISSING_IDENTITY", "User-Id and User-Email headers are required", http.StatusBadRequest)
	errMissingActor          = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Updated-By header is required", http.StatusBadRequest)
)

// ServiceRequestHandler handles HTTP requests for field-service requests.
//
// Requester identity (User-Id/User-Email) and the actor of a status change
// (Updated-By) arrive as headers set by the authenticating front layer; this
// service trusts them as-is.

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
	queries usecase.IServiceRequestQueryUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase, queries usecase.IServiceRequestQueryUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc, queries: queries}
}

// CreateRequest creates a new service request from the intake payload.
func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	requesterID := c.GetHeader("User-Id")
	requesterEmail := c.GetHeader("User-Email")
	if requesterID == "" || requesterEmail == "" {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return
	}

	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), requesterID, requesterEmail, payload.ToDraft())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// GetRequestByID returns one request by its storage id.
func (h *ServiceRequestHandler) GetRequestByID(c *gin.Context) {
	sr, err := h.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// GetRequestByBusinessID returns one request by its business id (SR-...).
func (h *ServiceRequestHandler) GetRequestByBusinessID(c *gin.Context) {
	sr, err := h.queries.GetByBusinessID(c.Request.Context(), c.Param("businessId"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// GetMyRequests returns the requester's requests, most recent first.
func (h *ServiceRequestHandler) GetMyRequests(c *gin.Context) {
	requests, err := h.queries.ListByRequester(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(requests))
}

// GetAllRequests returns every stored request.
func (h *ServiceRequestHandler) GetAllRequests(c *gin.Context) {
	requests, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(requests))
}

// GetRequestsByStatus returns requests in one status, oldest first.
func (h *ServiceRequestHandler) GetRequestsByStatus(c *gin.Context) {
	requests, err := h.queries.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(requests))
}

// UpdateStatus moves a request through its lifecycle and appends the audit
// timeline entry for the change.
func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	actor := c.GetHeader("Updated-By")
	if actor == "" {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), actor, payload.Status)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

// DeleteRequest removes a request that is PENDING or DONE.
func (h *ServiceRequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStats returns the number of requests per lifecycle status.
func (h *ServiceRequestHandler) GetStats(c *gin.Context) {
	stats, err := h.queries.Stats(c.Request.Context())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func mapServiceRequestError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var notFoundErr *usecase.NotFoundError
	var transitionErr *entities.InvalidTransitionError
	var conflictErr *usecase.ConflictError

	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidBusinessID),
		errors.Is(err, usecase.ErrInvalidRequesterID),
		errors.Is(err, usecase.ErrInvalidRequesterEmail),
		errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", notFoundErr.Error(), http.StatusNotFound)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", transitionErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &conflictErr):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", conflictErr.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
