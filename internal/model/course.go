package model

// swagger:model Course
type Course struct {
	Base
	Title        string `gorm:"size:200;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	InstructorID string `gorm:"index;type:varchar(36);not null" json:"instructorId"`
	Instructor   *User  `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	MediaURL     string `gorm:"size:500" json:"mediaUrl,omitempty"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
}

func (Course) TableName() string {
	return "courses"
}
