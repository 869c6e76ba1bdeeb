package handler

import (
	"context"
	"errors"

	"jobfit/internal/delivery/http/dto"
	"jobfit/internal/delivery/http/middleware"
	"jobfit/internal/pkg/response"
	"jobfit/internal/queue"
	"jobfit/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type BatchPublisher interface {
	PublishBatch(ctx context.Context, r queue.BatchRequest) error
}

type MatchHandler struct {
	matching   usecase.MatchingUsecase
	gaps       usecase.SkillGapUsecase
	comparison usecase.ComparisonUsecase
	trends     usecase.TrendsUsecase
	batch      usecase.BatchUsecase
	publisher  BatchPublisher
}

type MatchHandlerDeps struct {
	Matching   usecase.MatchingUsecase
	Gaps       usecase.SkillGapUsecase
	Comparison usecase.ComparisonUsecase
	Trends     usecase.TrendsUsecase
	Batch      usecase.BatchUsecase
	// Publisher enables ?async=true on the batch endpoint; nil disables it.
	Publisher BatchPublisher
}

func NewMatchHandler(d MatchHandlerDeps) *MatchHandler {
	return &MatchHandler{
		matching:   d.Matching,
		gaps:       d.Gaps,
		comparison: d.Comparison,
		trends:     d.Trends,
		batch:      d.Batch,
		publisher:  d.Publisher,
	}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	users := r.Group("/users/:user_id")
	users.Post("/jobs/:job_id/match", h.CalculateMatch)
	users.Get("/jobs/:job_id/skill-gap", h.SkillGap)
	users.Get("/matches/compare", h.Compare)
	users.Post("/matches/batch", h.Batch)
	users.Get("/trends", h.Trends)

	r.Patch("/matches/:match_id/weights", h.UpdateWeights)
}

func (h *MatchHandler) CalculateMatch(c fiber.Ctx) error {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		return err
	}
	jobID, err := uuidParam(c, "job_id")
	if err != nil {
		return err
	}
	var req dto.WeightsRequest
	if err := bindBody(c, &req, true); err != nil {
		return err
	}

	res, err := h.matching.CalculateMatch(c.Context(), userID, jobID, req.Weights)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *MatchHandler) SkillGap(c fiber.Ctx) error {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		return err
	}
	jobID, err := uuidParam(c, "job_id")
	if err != nil {
		return err
	}

	report, err := h.gaps.Analyze(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

func (h *MatchHandler) Compare(c fiber.Ctx) error {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		return err
	}
	cmp, err := h.comparison.Compare(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cmp)
}

func (h *MatchHandler) Trends(c fiber.Ctx) error {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		return err
	}
	report, err := h.trends.Analyze(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

// Batch scores every saved posting of the user. With ?async=true the request
// is queued for a worker and 202 is returned.
func (h *MatchHandler) Batch(c fiber.Ctx) error {
	userID, err := uuidParam(c, "user_id")
	if err != nil {
		return err
	}
	var req dto.WeightsRequest
	if err := bindBody(c, &req, true); err != nil {
		return err
	}

	if fiber.Query[bool](c, "async") {
		if h.publisher == nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Async batches are not enabled", nil, nil)
		}
		if req.Weights != nil {
			if err := req.Weights.Validate(); err != nil {
				return mapUsecaseError(errors.Join(usecase.ErrInvalidInput, err))
			}
		}
		if err := h.publisher.PublishBatch(c.Context(), queue.BatchRequest{UserID: userID, Weights: req.Weights}); err != nil {
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
		return response.Success(c, fiber.StatusAccepted, response.MessageAccepted, dto.BatchQueuedResponse{UserID: userID, Queued: true})
	}

	sum, err := h.batch.ScoreAll(c.Context(), userID, req.Weights)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewBatchResponse(sum))
}

func (h *MatchHandler) UpdateWeights(c fiber.Ctx) error {
	matchID, err := uuidParam(c, "match_id")
	if err != nil {
		return err
	}
	var req dto.UpdateWeightsRequest
	if err := bindBody(c, &req, false); err != nil {
		return err
	}
	if req.Weights == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "weights are required", nil, nil)
	}

	res, err := h.matching.RecalculateWeights(c.Context(), matchID, *req.Weights)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
