package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"codecade/internal/common"
	"codecade/internal/domain/model"
)

const (
	dateLayout = "2006-01-02"

	// Daily breakdowns are capped regardless of the exam window; phases
	// still cover the full span.
	maxDailyPlanDays = 10

	maxTopicsPerDay = 2
)

// StudyPlanService partitions an exam window into three fixed-proportion
// phases and emits a bounded daily task list. Plans are never persisted.
type StudyPlanService struct{}

func NewStudyPlanService() *StudyPlanService {
	return &StudyPlanService{}
}

type CreatePlanRequest struct {
	ExamName   string        `json:"examName" validate:"required"`
	StartDate  string        `json:"startDate" validate:"required,datetime=2006-01-02"`
	ExamDate   string        `json:"examDate" validate:"required,datetime=2006-01-02"`
	DailyHours float64       `json:"dailyHours" validate:"required,gt=0"`
	Topics     []model.Topic `json:"topics"`
}

type CreatePlanResponse struct {
	Message string           `json:"message"`
	Plan    *model.StudyPlan `json:"plan"`
}

func (s *StudyPlanService) CreatePlan(req CreatePlanRequest) (*CreatePlanResponse, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, common.Errorf("invalid start date: %w", common.ErrValidation)
	}
	exam, err := time.Parse(dateLayout, req.ExamDate)
	if err != nil {
		return nil, common.Errorf("invalid exam date: %w", common.ErrValidation)
	}

	totalDays := int(exam.Sub(start) / (24 * time.Hour))
	if totalDays <= 0 {
		return nil, common.Errorf("exam date must be after start date: %w", common.ErrValidation)
	}

	plan := &model.StudyPlan{
		ExamName:   req.ExamName,
		StartDate:  req.StartDate,
		ExamDate:   req.ExamDate,
		TotalDays:  totalDays,
		DailyHours: req.DailyHours,
		Topics:     req.Topics,
		Phases:     buildPhases(totalDays),
		DailyPlan:  buildDailyPlan(start, totalDays, req.DailyHours, req.Topics),
	}

	message := fmt.Sprintf("Study plan created for %s! %d days, %s hours/day.",
		req.ExamName, totalDays, formatHours(req.DailyHours))
	return &CreatePlanResponse{Message: message, Plan: plan}, nil
}

// ChatReply is the study bot's canned response; plan creation is the only
// real capability.
func (s *StudyPlanService) ChatReply() string {
	return "I can help you create a study plan! Use the Quick Plan Creator on the right to get started."
}

func buildPhases(totalDays int) []model.Phase {
	// Integer arithmetic gives the exact floor of 0.4*T and 0.8*T.
	foundationEnd := totalDays * 4 / 10
	practiceEnd := totalDays * 8 / 10

	return []model.Phase{
		{Name: "Foundation", StartDay: 1, EndDay: foundationEnd, Focus: "Learn basics and fundamentals"},
		{Name: "Practice", StartDay: foundationEnd + 1, EndDay: practiceEnd, Focus: "Solve problems and practice"},
		{Name: "Revision", StartDay: practiceEnd + 1, EndDay: totalDays, Focus: "Review and mock tests"},
	}
}

func buildDailyPlan(start time.Time, totalDays int, dailyHours float64, topics []model.Topic) []model.DailyPlanEntry {
	days := totalDays
	if days > maxDailyPlanDays {
		days = maxDailyPlanDays
	}

	entries := make([]model.DailyPlanEntry, 0, days)
	for i := 1; i <= days; i++ {
		tasks := make([]string, 0, maxTopicsPerDay)
		for t := 0; t < len(topics) && t < maxTopicsPerDay; t++ {
			tasks = append(tasks, fmt.Sprintf("Study %s (%s hours)", topics[t].Name, formatTaskHours(dailyHours/2)))
		}
		entries = append(entries, model.DailyPlanEntry{
			DayIndex: i,
			Date:     start.AddDate(0, 0, i-1).Format(dateLayout),
			Tasks:    tasks,
		})
	}
	return entries
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

// formatTaskHours keeps a trailing .0 on whole values ("2.0 hours"), matching
// the halved budget always being a fractional quantity in the task text.
func formatTaskHours(hours float64) string {
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
