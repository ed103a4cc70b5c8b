package service

import (
	"testing"
	"time"

	"edusync_backend/internal/model"
	"edusync_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema. The pool
// is pinned to one connection so every statement sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role model.UserRole) *model.User {
	t.Helper()
	u := &model.User{
		Name:     name,
		Email:    name + "@example.test",
		Password: "not-a-real-hash",
		Role:     role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return u
}

func seedCourse(t *testing.T, db *gorm.DB, instructorID, title string) *model.Course {
	t.Helper()
	c := &model.Course{
		Title:        title,
		Description:  "seeded course",
		InstructorID: instructorID,
		IsActive:     true,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed course %s: %v", title, err)
	}
	return c
}

func seedAssessment(t *testing.T, db *gorm.DB, courseID, title string, maxScore int, active bool) *model.Assessment {
	t.Helper()
	a := &model.Assessment{
		CourseID: courseID,
		Title:    title,
		MaxScore: maxScore,
		IsActive: active,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed assessment %s: %v", title, err)
	}
	return a
}

func seedQuestion(t *testing.T, db *gorm.DB, assessmentID, correct string, points int) *model.Question {
	t.Helper()
	q := &model.Question{
		AssessmentID:  assessmentID,
		Text:          "seeded question",
		Type:          model.MCQ,
		OptionsJSON:   []byte(`["A","B","C","D"]`),
		CorrectAnswer: correct,
		Points:        points,
	}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return q
}

func seedEnrollment(t *testing.T, db *gorm.DB, userID, courseID string) *model.Enrollment {
	t.Helper()
	e := &model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledOn: time.Now().UTC(),
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	return e
}
