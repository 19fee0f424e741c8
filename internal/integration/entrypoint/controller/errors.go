package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/middleware"
)

// handleError maps coded domain errors to HTTP responses. Anything else is
// logged and reported as a generic 500.
func handleError(ctx *gin.Context, err error) {
	var (
		objectiveErr *domainerror.ObjectiveError
		valueErr     *domainerror.ValueError
		chatErr      *domainerror.ChatError
		emailErr     *domainerror.EmailError
		seedErr      *domainerror.SeedError
	)

	switch {
	case errors.As(err, &objectiveErr):
		respondCoded(ctx, getStatusCodeForObjectiveError(objectiveErr.Code), objectiveErr.Message, string(objectiveErr.Code))
	case errors.As(err, &valueErr):
		respondCoded(ctx, getStatusCodeForValueError(valueErr.Code), valueErr.Message, string(valueErr.Code))
	case errors.As(err, &chatErr):
		respondCoded(ctx, getStatusCodeForChatError(chatErr.Code), chatErr.Message, string(chatErr.Code))
	case errors.As(err, &emailErr):
		respondCoded(ctx, getStatusCodeForEmailError(emailErr.Code), emailErr.Message, string(emailErr.Code))
	case errors.As(err, &seedErr):
		respondCoded(ctx, getStatusCodeForSeedError(seedErr.Code), seedErr.Message, string(seedErr.Code))
	default:
		slog.ErrorContext(ctx.Request.Context(), "request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func respondCoded(ctx *gin.Context, status int, message, code string) {
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request.Context(), "request failed", "path", ctx.FullPath(), "code", code, "error", message)
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body: " + err.Error(),
		Code:    code,
		Details: middleware.ValidationDetails(err),
	})
}

// getStatusCodeForObjectiveError maps objective error codes to HTTP status codes.
func getStatusCodeForObjectiveError(code domainerror.ObjectiveErrorCode) int {
	switch code {
	case domainerror.ErrCodeObjectiveNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDepartment,
		domainerror.ErrCodeInvalidObjectiveType,
		domainerror.ErrCodeInvalidNumberFormat,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeMissingObjectiveField,
		domainerror.ErrCodeNoFieldsToUpdate,
		domainerror.ErrCodeEmptyObjectiveIDs,
		domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeReorderMismatch:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidConfiguration:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForValueError maps value error codes to HTTP status codes.
func getStatusCodeForValueError(code domainerror.ValueErrorCode) int {
	switch code {
	case domainerror.ErrCodeValueNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidYear,
		domainerror.ErrCodeMissingValueFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForChatError maps chat error codes to HTTP status codes.
func getStatusCodeForChatError(code domainerror.ChatErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingMessages, domainerror.ErrCodeInvalidMessageRole:
		return http.StatusBadRequest
	case domainerror.ErrCodeChatRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeChatUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeChatProviderFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForEmailError maps email error codes to HTTP status codes.
func getStatusCodeForEmailError(code domainerror.EmailErrorCode) int {
	switch code {
	case domainerror.ErrCodeNoRecipients:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForSeedError maps seed error codes to HTTP status codes.
func getStatusCodeForSeedError(code domainerror.SeedErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnknownScenario:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
