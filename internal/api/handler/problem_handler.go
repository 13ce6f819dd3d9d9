package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"codecade/internal/api/middleware"
	"codecade/internal/app/service"
	"codecade/internal/common"
	"codecade/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ProblemHandler struct {
	problemService  *service.ProblemService
	progressService *service.ProgressService
	userService     *service.UserService
}

func NewProblemHandler(ps *service.ProblemService, prog *service.ProgressService, us *service.UserService) *ProblemHandler {
	return &ProblemHandler{problemService: ps, progressService: prog, userService: us}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listProblems)
	r.Get("/{problemSlug}", h.getProblem)

	r.Group(func(authed chi.Router) {
		authed.Use(middleware.Authenticator)
		authed.Post("/solve", h.solveProblem)
		authed.Post("/submit", h.submitSolution)
		authed.Get("/solved", h.listSolved)
	})
}

func (h *ProblemHandler) listProblems(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	tag := r.URL.Query().Get("tag")

	// The practice UI sends lowercase difficulty buckets.
	var difficulty model.ProblemDifficulty
	switch strings.ToLower(r.URL.Query().Get("difficulty")) {
	case "easy":
		difficulty = model.DifficultyEasy
	case "intermediate", "medium":
		difficulty = model.DifficultyMedium
	case "expert", "hard":
		difficulty = model.DifficultyHard
	}

	resp, err := h.problemService.ListProblems(r.Context(), page, pageSize, difficulty, tag)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ProblemHandler) getProblem(w http.ResponseWriter, r *http.Request) {
	problemSlug := chi.URLParam(r, "problemSlug")
	problem, err := h.problemService.GetProblemBySlug(r.Context(), problemSlug)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"problem": problem})
}

type solveProblemRequest struct {
	ProblemID string `json:"problemId"`
	Attempts  int    `json:"attempts"`
	TimeTaken int    `json:"timeTaken"`
	XPReward  int    `json:"xpReward"`
}

func (h *ProblemHandler) solveProblem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req solveProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.progressService.MarkProblemSolved(r.Context(), userID, req.ProblemID, req.Attempts, req.TimeTaken, req.XPReward)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

type submitSolutionRequest struct {
	ProblemID string `json:"problemId"`
	Language  string `json:"language"`
	Code      string `json:"code"`
	TimeSpent int    `json:"timeSpent"`
}

func (h *ProblemHandler) submitSolution(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req submitSolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	verdict, err := h.progressService.SubmitSolution(r.Context(), userID, req.ProblemID, req.Code, req.TimeSpent)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if verdict.Verdict == model.VerdictRejected {
		common.RespondWithJSON(w, http.StatusBadRequest, verdict)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, verdict)
}

func (h *ProblemHandler) listSolved(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	progress, err := h.userService.GetProgress(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"problems": progress.SolvedProblems,
		"total":    progress.TotalSolved,
	})
}
