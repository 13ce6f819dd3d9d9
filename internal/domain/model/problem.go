package model

import "time"

type ProblemDifficulty string

const (
	DifficultyEasy   ProblemDifficulty = "Easy"
	DifficultyMedium ProblemDifficulty = "Medium"
	DifficultyHard   ProblemDifficulty = "Hard"
)

// Problem is a catalog entry; solving and submitting reference it by id.
type Problem struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Slug           string            `json:"slug"`
	Description    string            `json:"description"`
	Difficulty     ProblemDifficulty `json:"difficulty"`
	Tags           []string          `json:"tags"`
	AvgTimeMinutes int               `json:"avgTime"`
	SuccessRate    int               `json:"successRate"`
	CreatedAt      time.Time         `json:"created_at"`
}

// SolvedProblem records one solve. Unlike lessons there is no uniqueness:
// re-solving the same problem creates another record and grants XP again.
type SolvedProblem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProblemID string    `json:"problem_id"`
	Attempts  int       `json:"attempts"`
	TimeTaken int       `json:"time_taken"`
	SolvedAt  time.Time `json:"solved_at"`
}

const (
	VerdictAccepted = "accepted"
	VerdictRejected = "rejected"
)

// SubmissionVerdict is the outcome of a solution submission. Runtime and
// memory are synthetic display figures, not measurements.
type SubmissionVerdict struct {
	Verdict   string `json:"verdict"`
	Message   string `json:"message"`
	RuntimeMs int    `json:"runtime,omitempty"`
	MemoryKb  int    `json:"memory,omitempty"`
	XPGained  int    `json:"xpGained"`
}
