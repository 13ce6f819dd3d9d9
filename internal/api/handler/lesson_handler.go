package handler

import (
	"encoding/json"
	"net/http"

	"codecade/internal/api/middleware"
	"codecade/internal/app/service"
	"codecade/internal/common"

	"github.com/go-chi/chi/v5"
)

type LessonHandler struct {
	progressService *service.ProgressService
	userService     *service.UserService
}

func NewLessonHandler(ps *service.ProgressService, us *service.UserService) *LessonHandler {
	return &LessonHandler{progressService: ps, userService: us}
}

func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Post("/complete", h.completeLesson)
	r.Get("/completed", h.listCompleted)
}

type completeLessonRequest struct {
	LessonID string `json:"lessonId"`
	XPReward int    `json:"xpReward"`
}

func (h *LessonHandler) completeLesson(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req completeLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.progressService.MarkLessonCompleted(r.Context(), userID, req.LessonID, req.XPReward)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

func (h *LessonHandler) listCompleted(w http.ResponseWriter, r *http.Request) {
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
		"lessons": progress.CompletedLessons,
		"total":   progress.TotalLessons,
	})
}
