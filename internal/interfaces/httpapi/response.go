package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "mockmaster"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
	Retryable  bool
}

// draftErrors maps every draft failure kind to its wire shape. Reasons are
// part of the API contract and must not change.
var draftErrors = map[draft.Kind]mappedError{
	draft.KindDraftNotFound:              {HTTPStatus: http.StatusNotFound, Reason: "draftNotFound", Status: "NOT_FOUND"},
	draft.KindTeamNotFound:               {HTTPStatus: http.StatusNotFound, Reason: "teamNotFound", Status: "NOT_FOUND"},
	draft.KindPlayerNotFound:             {HTTPStatus: http.StatusNotFound, Reason: "playerNotFound", Status: "NOT_FOUND"},
	draft.KindDraftFull:                  {HTTPStatus: http.StatusConflict, Reason: "draftFull", Status: "FAILED_PRECONDITION"},
	draft.KindDraftNotJoinable:           {HTTPStatus: http.StatusConflict, Reason: "draftNotJoinable", Status: "FAILED_PRECONDITION"},
	draft.KindDraftNotPending:            {HTTPStatus: http.StatusConflict, Reason: "draftNotPending", Status: "FAILED_PRECONDITION"},
	draft.KindNoTeamsToStart:             {HTTPStatus: http.StatusConflict, Reason: "noTeamsToStart", Status: "FAILED_PRECONDITION"},
	draft.KindDraftNotActive:             {HTTPStatus: http.StatusConflict, Reason: "draftNotActive", Status: "FAILED_PRECONDITION"},
	draft.KindDraftNotPaused:             {HTTPStatus: http.StatusConflict, Reason: "draftNotPaused", Status: "FAILED_PRECONDITION"},
	draft.KindDraftAlreadyEnded:          {HTTPStatus: http.StatusConflict, Reason: "draftAlreadyEnded", Status: "FAILED_PRECONDITION"},
	draft.KindPlayerUnavailable:          {HTTPStatus: http.StatusConflict, Reason: "playerUnavailable", Status: "ALREADY_EXISTS"},
	draft.KindNotYourTurn:                {HTTPStatus: http.StatusConflict, Reason: "notYourTurn", Status: "FAILED_PRECONDITION"},
	draft.KindRosterRequirementViolation: {HTTPStatus: http.StatusConflict, Reason: "rosterRequirementViolation", Status: "FAILED_PRECONDITION"},
	draft.KindPositionLimitReached:       {HTTPStatus: http.StatusConflict, Reason: "positionLimitReached", Status: "FAILED_PRECONDITION"},
	draft.KindSerializationConflict:      {HTTPStatus: http.StatusServiceUnavailable, Reason: "serializationConflict", Status: "ABORTED", Retryable: true},
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	if mapped.HTTPStatus == http.StatusInternalServerError {
		writeInternalError(ctx, w)
		return
	}
	if mapped.Retryable {
		w.Header().Set("Retry-After", "1")
	}

	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	const msg = "internal server error"

	writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
}

func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()
	_ = ctx

	if mapped, ok := draftErrors[draft.KindOf(err)]; ok {
		return mapped
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, draft.ErrInvalidRosterSize),
		errors.Is(err, draft.ErrNoTeams):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Reason:     "unauthorized",
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
