package handler

import (
	"errors"

	"jobfit/internal/delivery/http/middleware"
	"jobfit/internal/pkg/response"
	"jobfit/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", fiber.Map{"detail": err.Error()}, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, usecase.ErrBatchInProgress):
		return middleware.NewAppError(fiber.StatusConflict, "Batch already running", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func uuidParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

// bindBody decodes a JSON body into out. An empty body is allowed only when optional is set.
func bindBody(c fiber.Ctx, out any, optional bool) error {
	if len(c.Body()) == 0 {
		if optional {
			return nil
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Request body is required", nil, nil)
	}
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", fiber.Map{"detail": err.Error()}, err)
	}
	return nil
}
