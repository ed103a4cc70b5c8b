package model

import (
	"encoding/json"
	"time"
)

// Result is one recorded attempt. Every submission inserts a new row; a
// (user, assessment) pair accumulates rows, one per attempt.
// swagger:model Result
type Result struct {
	Base
	AssessmentID string          `gorm:"index;type:varchar(36);not null" json:"assessmentId"`
	Assessment   *Assessment     `gorm:"foreignKey:AssessmentID" json:"assessment,omitempty"`
	UserID       string          `gorm:"index;type:varchar(36);not null" json:"userId"`
	User         *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Score        int             `gorm:"not null" json:"score"`
	AttemptDate  time.Time       `json:"attemptDate"`
	Answers      json.RawMessage `gorm:"type:json" json:"answers,omitempty"` // questionId -> submitted answer
	TimeTaken    *int            `json:"timeTaken,omitempty"`                // Seconds, client-reported
	IsCompleted  bool            `gorm:"default:false" json:"isCompleted"`
}

func (Result) TableName() string {
	return "results"
}
