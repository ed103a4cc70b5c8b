package model

import "time"

// swagger:model Assessment
type Assessment struct {
	Base
	CourseID  string     `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Course    *Course    `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	MaxScore  int        `gorm:"not null" json:"maxScore"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	TimeLimit *int       `json:"timeLimit,omitempty"` // Minutes
}

func (Assessment) TableName() string {
	return "assessments"
}
