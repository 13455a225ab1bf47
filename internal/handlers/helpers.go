package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "wealthyways/internal/errors"
	"wealthyways/internal/logger"
	"wealthyways/internal/middleware"
	"wealthyways/internal/services"
)

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// monthQuery returns the optional ?month= filter after checking its format.
func monthQuery(c *gin.Context) (string, error) {
	month := c.Query("month")
	if month == "" {
		return "", nil
	}
	if _, err := services.ParseMonth(month); err != nil {
		return "", err
	}
	return month, nil
}

// bindingError maps a ShouldBind failure to the most specific AppError. Format
// violations on dates, months and transaction types get their own codes;
// everything else is INVALID_INPUT.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "iso_date", "optional_iso_date":
				return apperrors.ErrInvalidDate
			case "month_key":
				return apperrors.ErrInvalidMonth
			case "transaction_type":
				return apperrors.ErrInvalidTransactionType
			}
		}
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
				"request_id", c.GetString(middleware.RequestIDKey),
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
