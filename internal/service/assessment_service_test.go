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

func newAssessmentService(db *gorm.DB) *AssessmentService {
	return NewAssessmentService(
		repository.NewAssessmentRepository(db),
		repository.NewEnrollmentRepository(db, nil),
		repository.NewCourseRepository(db),
	)
}

func TestCreateAssessmentUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newAssessmentService(db)

	_, err := svc.Create(AssessmentRequest{CourseID: "missing", Title: "Quiz", MaxScore: 10})
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestDeleteAssessmentWithAttemptsRefused(t *testing.T) {
	db := newTestDB(t)
	svc := newAssessmentService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	assessment := seedAssessment(t, db, course.ID, "Quiz 1", 100, true)
	seedQuestion(t, db, assessment.ID, "B", 5)

	result := &model.Result{
		AssessmentID: assessment.ID,
		UserID:       student.ID,
		Score:        5,
		AttemptDate:  time.Now().UTC(),
	}
	if err := db.Create(result).Error; err != nil {
		t.Fatalf("seed result: %v", err)
	}

	if err := svc.Delete(assessment.ID); !errors.Is(err, util.ErrAssessmentHasResults) {
		t.Fatalf("expected ErrAssessmentHasResults, got %v", err)
	}

	// Refusal must leave the assessment and its questions untouched.
	if _, err := svc.Get(assessment.ID); err != nil {
		t.Fatalf("assessment should still exist: %v", err)
	}
	questions, err := svc.ListQuestions(assessment.ID)
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question to survive, got %d", len(questions))
	}
}

func TestDeleteAssessmentRemovesQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newAssessmentService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	assessment := seedAssessment(t, db, course.ID, "Quiz 1", 100, true)
	seedQuestion(t, db, assessment.ID, "B", 5)
	seedQuestion(t, db, assessment.ID, "C", 5)

	if err := svc.Delete(assessment.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get(assessment.ID); !errors.Is(err, util.ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound after delete, got %v", err)
	}
	questions, err := svc.ListQuestions(assessment.ID)
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected questions to go with the assessment, got %d", len(questions))
	}
}

func TestListForStudentFiltersByEnrollmentAndActive(t *testing.T) {
	db := newTestDB(t)
	svc := newAssessmentService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	enrolled := seedCourse(t, db, instructor.ID, "Algebra")
	other := seedCourse(t, db, instructor.ID, "Biology")

	visible := seedAssessment(t, db, enrolled.ID, "Visible", 100, true)
	seedAssessment(t, db, enrolled.ID, "Inactive", 100, false)
	seedAssessment(t, db, other.ID, "Not enrolled", 100, true)

	seedEnrollment(t, db, student.ID, enrolled.ID)

	assessments, err := svc.ListForStudent(student.ID)
	if err != nil {
		t.Fatalf("list for student: %v", err)
	}
	if len(assessments) != 1 {
		t.Fatalf("expected exactly 1 visible assessment, got %d", len(assessments))
	}
	if assessments[0].ID != visible.ID {
		t.Fatalf("expected assessment %s, got %s", visible.ID, assessments[0].ID)
	}
}

func TestListForStudentNoEnrollments(t *testing.T) {
	db := newTestDB(t)
	svc := newAssessmentService(db)
	student := seedUser(t, db, "student1", model.Student)

	assessments, err := svc.ListForStudent(student.ID)
	if err != nil {
		t.Fatalf("list for student: %v", err)
	}
	if len(assessments) != 0 {
		t.Fatalf("expected no assessments, got %d", len(assessments))
	}
}

func TestQuestionMutationRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newAssessmentService(db)
	owner := seedUser(t, db, "teach1", model.Instructor)
	stranger := seedUser(t, db, "teach2", model.Instructor)
	course := seedCourse(t, db, owner.ID, "Algebra")
	assessment := seedAssessment(t, db, course.ID, "Quiz 1", 100, true)

	req := QuestionRequest{
		AssessmentID:  assessment.ID,
		Text:          "What is 2+2?",
		Type:          string(model.MCQ),
		OptionsJSON:   []byte(`["3","4","5"]`),
		CorrectAnswer: "4",
		Points:        2,
	}

	if _, err := svc.CreateQuestion(req, stranger.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for non-owner, got %v", err)
	}

	q, err := svc.CreateQuestion(req, owner.ID)
	if err != nil {
		t.Fatalf("owner create question: %v", err)
	}

	if _, err := svc.UpdateQuestion(q.ID, req, stranger.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied on update, got %v", err)
	}
	if err := svc.DeleteQuestion(q.ID, stranger.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied on delete, got %v", err)
	}
	if err := svc.DeleteQuestion(q.ID, owner.ID); err != nil {
		t.Fatalf("owner delete question: %v", err)
	}
}

func TestQuestionValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newAssessmentService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	course := seedCourse(t, db, instructor.ID, "Algebra")
	assessment := seedAssessment(t, db, course.ID, "Quiz 1", 100, true)

	_, err := svc.CreateQuestion(QuestionRequest{
		AssessmentID: assessment.ID,
		Text:         "   ",
		Type:         string(model.ShortAnswer),
	}, instructor.ID)
	if !errors.Is(err, util.ErrQuestionTextRequired) {
		t.Fatalf("expected ErrQuestionTextRequired, got %v", err)
	}

	_, err = svc.CreateQuestion(QuestionRequest{
		AssessmentID: assessment.ID,
		Text:         "Pick one",
		Type:         string(model.MCQ),
	}, instructor.ID)
	if !errors.Is(err, util.ErrOptionsRequired) {
		t.Fatalf("expected ErrOptionsRequired for MCQ without options, got %v", err)
	}

	// Short-answer questions carry no option list.
	q, err := svc.CreateQuestion(QuestionRequest{
		AssessmentID:  assessment.ID,
		Text:          "Name the capital of France",
		Type:          string(model.ShortAnswer),
		CorrectAnswer: "Paris",
	}, instructor.ID)
	if err != nil {
		t.Fatalf("short answer without options should be valid: %v", err)
	}
	if q.Points != 1 {
		t.Fatalf("expected default points 1, got %d", q.Points)
	}
}
