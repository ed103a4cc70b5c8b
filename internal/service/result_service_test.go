package service

import (
	"errors"
	"testing"

	"edusync_backend/internal/model"
	"edusync_backend/internal/repository"
	"edusync_backend/internal/util"

	"gorm.io/gorm"
)

func newResultService(db *gorm.DB) *ResultService {
	return NewResultService(
		repository.NewResultRepository(db),
		repository.NewAssessmentRepository(db),
		repository.NewEnrollmentRepository(db, nil),
	)
}

func TestSubmitUnknownAssessment(t *testing.T) {
	db := newTestDB(t)
	svc := newResultService(db)
	student := seedUser(t, db, "student1", model.Student)

	_, err := svc.Submit(student.ID, SubmitAttemptRequest{AssessmentID: "missing"})
	if !errors.Is(err, util.ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
	}
}

func TestSubmitRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newResultService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	assessment := seedAssessment(t, db, course.ID, "Quiz 1", 100, true)

	_, err := svc.Submit(student.ID, SubmitAttemptRequest{AssessmentID: assessment.ID})
	if !errors.Is(err, util.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}

	// The refused attempt must leave no trace.
	var count int64
	if err := db.Model(&model.Result{}).Count(&count).Error; err != nil {
		t.Fatalf("count results: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no result rows, got %d", count)
	}
}

func TestSubmitScoresOnTheServer(t *testing.T) {
	db := newTestDB(t)
	svc := newResultService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	assessment := seedAssessment(t, db, course.ID, "Quiz 1", 100, true)
	q1 := seedQuestion(t, db, assessment.ID, "Paris", 5)
	q2 := seedQuestion(t, db, assessment.ID, "B", 3)
	q3 := seedQuestion(t, db, assessment.ID, "C", 7)
	seedEnrollment(t, db, student.ID, course.ID)

	result, err := svc.Submit(student.ID, SubmitAttemptRequest{
		AssessmentID: assessment.ID,
		Answers: []AnswerSubmission{
			{QuestionID: q1.ID, Answer: "  paris "}, // correct, case and spacing differ
			{QuestionID: q2.ID, Answer: "A"},        // wrong
			{QuestionID: q3.ID, Answer: "c"},        // correct
		},
		Score: 9999, // client-claimed score is ignored
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 12 {
		t.Fatalf("expected server-computed score 12, got %d", result.Score)
	}

	var stored model.Result
	if err := db.First(&stored, "id = ?", result.ID).Error; err != nil {
		t.Fatalf("load stored result: %v", err)
	}
	if stored.Score != 12 {
		t.Fatalf("expected persisted score 12, got %d", stored.Score)
	}
}

func TestSubmitTwiceKeepsBothAttempts(t *testing.T) {
	db := newTestDB(t)
	svc := newResultService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	assessment := seedAssessment(t, db, course.ID, "Quiz 1", 100, true)
	q := seedQuestion(t, db, assessment.ID, "4", 10)
	seedEnrollment(t, db, student.ID, course.ID)

	first, err := svc.Submit(student.ID, SubmitAttemptRequest{
		AssessmentID: assessment.ID,
		Answers:      []AnswerSubmission{{QuestionID: q.ID, Answer: "5"}},
	})
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.Submit(student.ID, SubmitAttemptRequest{
		AssessmentID: assessment.ID,
		Answers:      []AnswerSubmission{{QuestionID: q.ID, Answer: "4"}},
	})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if first.ID == second.ID {
		t.Fatal("each attempt should produce its own result")
	}
	if first.Score != 0 || second.Score != 10 {
		t.Fatalf("unexpected scores: first=%d second=%d", first.Score, second.Score)
	}

	var count int64
	if err := db.Model(&model.Result{}).
		Where("user_id = ? AND assessment_id = ?", student.ID, assessment.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count results: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 attempt rows, got %d", count)
	}
}

func TestScoreAttempt(t *testing.T) {
	questions := []model.Question{
		{Base: model.Base{ID: "q1"}, CorrectAnswer: "True", Points: 2},
		{Base: model.Base{ID: "q2"}, CorrectAnswer: "Blue", Points: 3},
		{Base: model.Base{ID: "q3"}, CorrectAnswer: "", Points: 5}, // ungradable
	}

	cases := []struct {
		name    string
		answers []AnswerSubmission
		want    int
	}{
		{"all correct", []AnswerSubmission{{"q1", "true"}, {"q2", " BLUE "}}, 5},
		{"partially correct", []AnswerSubmission{{"q1", "False"}, {"q2", "blue"}}, 3},
		{"unanswered questions score zero", []AnswerSubmission{{"q1", "true"}}, 2},
		{"answer to ungradable question ignored", []AnswerSubmission{{"q3", "anything"}}, 0},
		{"no answers", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreAttempt(questions, tc.answers); got != tc.want {
				t.Fatalf("scoreAttempt = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestGetAndDeleteResult(t *testing.T) {
	db := newTestDB(t)
	svc := newResultService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	assessment := seedAssessment(t, db, course.ID, "Quiz 1", 100, true)
	seedEnrollment(t, db, student.ID, course.ID)

	result, err := svc.Submit(student.ID, SubmitAttemptRequest{AssessmentID: assessment.ID})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	got, err := svc.Get(result.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != student.ID {
		t.Fatalf("expected result owned by %s, got %s", student.ID, got.UserID)
	}

	if err := svc.Delete(result.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(result.ID); !errors.Is(err, util.ErrResultNotFound) {
		t.Fatalf("expected ErrResultNotFound after delete, got %v", err)
	}
	if err := svc.Delete(result.ID); !errors.Is(err, util.ErrResultNotFound) {
		t.Fatalf("expected ErrResultNotFound on double delete, got %v", err)
	}
}
