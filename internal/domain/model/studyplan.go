package model

// Topic names one subject the exam covers.
type Topic struct {
	Name string `json:"name"`
}

// Phase is a named sub-interval of the plan's day span. Boundaries are fixed
// fractions of the total: Foundation ends at day 0.4*T, Practice at 0.8*T,
// Revision at T.
type Phase struct {
	Name     string `json:"name"`
	StartDay int    `json:"startDay"`
	EndDay   int    `json:"endDay"`
	Focus    string `json:"focus"`
}

type DailyPlanEntry struct {
	DayIndex int      `json:"dayIndex"`
	Date     string   `json:"date"`
	Tasks    []string `json:"tasks"`
}

// StudyPlan is computed and returned in one request cycle; nothing is stored.
type StudyPlan struct {
	ExamName   string           `json:"examName"`
	StartDate  string           `json:"startDate"`
	ExamDate   string           `json:"examDate"`
	TotalDays  int              `json:"totalDays"`
	DailyHours float64          `json:"dailyHours"`
	Topics     []Topic          `json:"topics"`
	Phases     []Phase          `json:"phases"`
	DailyPlan  []DailyPlanEntry `json:"dailyPlan"`
}
