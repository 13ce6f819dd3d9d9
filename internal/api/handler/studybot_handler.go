package handler

import (
	"encoding/json"
	"net/http"

	"codecade/internal/app/service"
	"codecade/internal/common"

	"github.com/go-chi/chi/v5"
)

type StudyBotHandler struct {
	planService *service.StudyPlanService
}

func NewStudyBotHandler(planService *service.StudyPlanService) *StudyBotHandler {
	return &StudyBotHandler{planService: planService}
}

func (h *StudyBotHandler) RegisterRoutes(r chi.Router) {
	r.Post("/plan", h.createPlan)
	r.Post("/chat", h.chat)
}

func (h *StudyBotHandler) createPlan(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.planService.CreatePlan(req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *StudyBotHandler) chat(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"reply": h.planService.ChatReply()})
}
