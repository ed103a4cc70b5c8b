package model

import "time"

// Enrollment authorizes a student to view and attempt a course's assessments.
// The composite unique index closes the double-enroll race at the storage
// layer; the application-level existence check only provides the friendly 409.
// swagger:model Enrollment
type Enrollment struct {
	Base
	UserID     string    `gorm:"uniqueIndex:idx_user_course;type:varchar(36);not null" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourseID   string    `gorm:"uniqueIndex:idx_user_course;type:varchar(36);not null" json:"courseId"`
	Course     *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	EnrolledOn time.Time `json:"enrolledOn"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
