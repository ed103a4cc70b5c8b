package model

import "encoding/json"

type QuestionType string

const (
	MCQ         QuestionType = "MCQ"
	TrueFalse   QuestionType = "TrueFalse"
	ShortAnswer QuestionType = "ShortAnswer"
)

// swagger:model Question
type Question struct {
	Base
	AssessmentID  string          `gorm:"index;type:varchar(36);not null" json:"assessmentId"`
	Text          string          `gorm:"type:text;not null" json:"text"`
	Type          QuestionType    `gorm:"size:20;default:'MCQ'" json:"type"`
	OptionsJSON   json.RawMessage `gorm:"type:json" json:"optionsJson,omitempty"` // option list, required for MCQ
	CorrectAnswer string          `gorm:"type:text" json:"correctAnswer,omitempty"`
	Points        int             `gorm:"default:1" json:"points"`
}

func (Question) TableName() string {
	return "questions"
}
