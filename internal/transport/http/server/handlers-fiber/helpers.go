package handlers_fiber

import (
	"errors"
	"net/http"

	"mergington-activities/internal/entities"
	api "mergington-activities/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrActivityNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "Activity not found"
	case errors.Is(err, entities.ErrAlreadyEnrolled):
		status = http.StatusBadRequest
		code = api.ALREADYENROLLED
		msg = "Student is already signed up for this activity"
	case errors.Is(err, entities.ErrNotEnrolled):
		status = http.StatusBadRequest
		code = api.NOTENROLLED
		msg = "Student is not signed up for this activity"
	case errors.Is(err, entities.ErrActivityFull):
		status = http.StatusBadRequest
		code = api.ACTIVITYFULL
		msg = "Activity is full"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Detail: msg, Code: code}
}

// ErrorHandler renders errors returned by routing and middleware in the API error shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := api.INTERNAL
		switch fe.Code {
		case fiber.StatusBadRequest:
			code = api.INVALIDARGUMENT
		case fiber.StatusNotFound:
			code = api.NOTFOUND
		}
		return c.Status(fe.Code).JSON(errorResponse(code, fe.Message))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse(api.INTERNAL, "internal error"))
}
