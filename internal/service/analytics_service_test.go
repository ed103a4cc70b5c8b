package service

import (
	"errors"
	"testing"
	"time"

	"edusync_backend/internal/model"
	"edusync_backend/internal/repository"
	"edusync_backend/internal/util"

	"gorm.io/gorm"
)

func newAnalyticsService(db *gorm.DB) *AnalyticsService {
	return NewAnalyticsService(
		repository.NewResultRepository(db),
		repository.NewCourseRepository(db),
	)
}

func seedResultAt(t *testing.T, db *gorm.DB, assessmentID, userID string, score int, at time.Time) *model.Result {
	t.Helper()
	r := &model.Result{
		AssessmentID: assessmentID,
		UserID:       userID,
		Score:        score,
		AttemptDate:  at,
		IsCompleted:  true,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed result: %v", err)
	}
	return r
}

func TestCourseAnalyticsOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)
	owner := seedUser(t, db, "teach1", model.Instructor)
	stranger := seedUser(t, db, "teach2", model.Instructor)
	course := seedCourse(t, db, owner.ID, "Algebra")

	if _, err := svc.CourseAnalytics(course.ID, stranger.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for non-owner, got %v", err)
	}
	if _, err := svc.CourseAnalytics("no-such-course", owner.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for missing course, got %v", err)
	}
}

func TestCourseAnalyticsGroupsAttempts(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	quiz := seedAssessment(t, db, course.ID, "Quiz 1", 100, true)
	exam := seedAssessment(t, db, course.ID, "Final", 100, true)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedResultAt(t, db, quiz.ID, student.ID, 70, base)
	seedResultAt(t, db, quiz.ID, student.ID, 85, base.Add(time.Hour))
	seedResultAt(t, db, exam.ID, student.ID, 60, base.Add(2*time.Hour))

	analytics, err := svc.CourseAnalytics(course.ID, instructor.ID)
	if err != nil {
		t.Fatalf("course analytics: %v", err)
	}
	if len(analytics) != 2 {
		t.Fatalf("expected 2 (student, assessment) groups, got %d", len(analytics))
	}

	var quizGroup *StudentAssessmentAnalytics
	for i := range analytics {
		if analytics[i].AssessmentID == quiz.ID {
			quizGroup = &analytics[i]
		}
	}
	if quizGroup == nil {
		t.Fatal("quiz group missing from analytics")
	}
	if quizGroup.StudentName != "student1" || quizGroup.AssessmentTitle != "Quiz 1" {
		t.Fatalf("unexpected group labels: %+v", quizGroup)
	}
	if len(quizGroup.Attempts) != 2 {
		t.Fatalf("expected 2 attempts in quiz group, got %d", len(quizGroup.Attempts))
	}
	if quizGroup.Attempts[0].Score != 70 || quizGroup.Attempts[1].Score != 85 {
		t.Fatalf("attempts out of chronological order: %+v", quizGroup.Attempts)
	}
	if quizGroup.BestScore != 85 {
		t.Fatalf("expected best score 85, got %d", quizGroup.BestScore)
	}
}

func TestCourseAnalyticsEmptyCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	course := seedCourse(t, db, instructor.ID, "Algebra")

	analytics, err := svc.CourseAnalytics(course.ID, instructor.ID)
	if err != nil {
		t.Fatalf("course analytics: %v", err)
	}
	if len(analytics) != 0 {
		t.Fatalf("expected empty analytics, got %d groups", len(analytics))
	}
}

func TestResultsByUserPercentages(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	quiz := seedAssessment(t, db, course.ID, "Quiz 1", 50, true)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedResultAt(t, db, quiz.ID, student.ID, 40, base)
	seedResultAt(t, db, quiz.ID, student.ID, 25, base.Add(time.Hour))

	grouped, err := svc.ResultsByUser(student.ID)
	if err != nil {
		t.Fatalf("results by user: %v", err)
	}
	if len(grouped) != 1 {
		t.Fatalf("expected 1 assessment group, got %d", len(grouped))
	}

	g := grouped[0]
	if g.AssessmentTitle != "Quiz 1" {
		t.Fatalf("unexpected title %q", g.AssessmentTitle)
	}
	if g.BestScore != 40 {
		t.Fatalf("expected best score 40, got %d", g.BestScore)
	}
	if len(g.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(g.Attempts))
	}
	// Newest first.
	if g.Attempts[0].Score != 25 || g.Attempts[1].Score != 40 {
		t.Fatalf("attempts not newest-first: %+v", g.Attempts)
	}
	if g.Attempts[1].Percentage != 80.0 {
		t.Fatalf("expected percentage 80.0, got %v", g.Attempts[1].Percentage)
	}
}

// A max score of zero must not blow up the percentage; the divisor falls back
// to 1.
func TestResultsByUserZeroMaxScore(t *testing.T) {
	db := newTestDB(t)
	svc := newAnalyticsService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	quiz := seedAssessment(t, db, course.ID, "Broken", 0, true)

	seedResultAt(t, db, quiz.ID, student.ID, 3, time.Now().UTC())

	grouped, err := svc.ResultsByUser(student.ID)
	if err != nil {
		t.Fatalf("results by user: %v", err)
	}
	if len(grouped) != 1 || len(grouped[0].Attempts) != 1 {
		t.Fatalf("unexpected grouping: %+v", grouped)
	}
	if got := grouped[0].Attempts[0].Percentage; got != 300.0 {
		t.Fatalf("expected fallback divisor of 1 (percentage 300), got %v", got)
	}
}
