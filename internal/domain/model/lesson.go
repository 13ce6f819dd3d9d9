package model

import "time"

// CompletedLesson records one lesson completion. At most one record exists
// per (user, lesson) pair; a repeat completion is a no-op.
type CompletedLesson struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	LessonID    string    `json:"lesson_id"`
	CompletedAt time.Time `json:"completed_at"`
}
