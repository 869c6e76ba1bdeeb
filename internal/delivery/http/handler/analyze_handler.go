package handler

import (
	"jobfit/internal/delivery/http/dto"
	"jobfit/internal/pkg/response"
	"jobfit/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// AnalyzeHandler serves the stateless endpoints: inputs come in the body and
// nothing is stored.
type AnalyzeHandler struct {
	matching usecase.MatchingUsecase
	gaps     usecase.SkillGapUsecase
}

func NewAnalyzeHandler(matching usecase.MatchingUsecase, gaps usecase.SkillGapUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{matching: matching, gaps: gaps}
}

func (h *AnalyzeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/analyze")
	grp.Post("/match", h.Match)
	grp.Post("/skill-gap", h.SkillGap)
}

func (h *AnalyzeHandler) Match(c fiber.Ctx) error {
	var req dto.AnalyzeMatchRequest
	if err := bindBody(c, &req, false); err != nil {
		return err
	}
	res, err := h.matching.Analyze(c.Context(), req.Profile, req.Job, req.Weights)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AnalyzeHandler) SkillGap(c fiber.Ctx) error {
	var req dto.AnalyzeSkillGapRequest
	if err := bindBody(c, &req, false); err != nil {
		return err
	}
	report, err := h.gaps.AnalyzeSkills(c.Context(), req.Skills, req.Job)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}
