package service

import (
	"context"

	"codecade/internal/common"
	"codecade/internal/domain/model"
	"codecade/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ProblemService manages the problem catalog browsed by the practice pages.
type ProblemService struct {
	problemRepo repository.ProblemRepository
}

func NewProblemService(problemRepo repository.ProblemRepository) *ProblemService {
	return &ProblemService{problemRepo: problemRepo}
}

type CreateProblemRequest struct {
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Difficulty     model.ProblemDifficulty `json:"difficulty"`
	Tags           []string                `json:"tags"`
	AvgTimeMinutes int                     `json:"avgTime"`
	SuccessRate    int                     `json:"successRate"`
}

func (s *ProblemService) CreateProblem(ctx context.Context, req CreateProblemRequest) (*model.Problem, error) {
	if req.Title == "" || req.Description == "" || req.Difficulty == "" {
		return nil, common.Errorf("missing required fields for problem creation: %w", common.ErrBadRequest)
	}
	switch req.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return nil, common.Errorf("unknown difficulty %q: %w", req.Difficulty, common.ErrBadRequest)
	}

	problem := &model.Problem{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Slug:           slug.Make(req.Title),
		Description:    req.Description,
		Difficulty:     req.Difficulty,
		Tags:           req.Tags,
		AvgTimeMinutes: req.AvgTimeMinutes,
		SuccessRate:    req.SuccessRate,
	}
	if err := s.problemRepo.CreateProblem(ctx, problem); err != nil {
		return nil, common.Errorf("failed to create problem: %w", err)
	}
	return problem, nil
}

func (s *ProblemService) GetProblemBySlug(ctx context.Context, problemSlug string) (*model.Problem, error) {
	problem, err := s.problemRepo.FindProblemBySlug(ctx, problemSlug)
	if err != nil {
		return nil, common.Errorf("failed to find problem: %w", err)
	}
	return problem, nil
}

type ProblemListResponse struct {
	Problems []model.Problem `json:"problems"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

func (s *ProblemService) ListProblems(ctx context.Context, page, pageSize int, difficulty model.ProblemDifficulty, tag string) (*ProblemListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	problems, total, err := s.problemRepo.ListProblems(ctx, pageSize, (page-1)*pageSize, difficulty, tag)
	if err != nil {
		return nil, common.Errorf("failed to list problems: %w", err)
	}
	if problems == nil {
		problems = []model.Problem{}
	}
	return &ProblemListResponse{Problems: problems, Total: total, Page: page, PageSize: pageSize}, nil
}
