package service

import (
	"edusync_backend/internal/model"
	"edusync_backend/internal/repository"
	"edusync_backend/internal/util"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type AssessmentService struct {
	Repo           *repository.AssessmentRepository
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewAssessmentService(repo *repository.AssessmentRepository, enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *AssessmentService {
	return &AssessmentService{
		Repo:           repo,
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

type AssessmentRequest struct {
	CourseID  string     `json:"courseId" binding:"required"`
	Title     string     `json:"title" binding:"required"`
	MaxScore  int        `json:"maxScore" binding:"required,gt=0"`
	IsActive  *bool      `json:"isActive"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	TimeLimit *int       `json:"timeLimit"`
}

type QuestionRequest struct {
	AssessmentID  string          `json:"assessmentId" binding:"required"`
	Text          string          `json:"text"`
	Type          string          `json:"type" binding:"omitempty,oneof=MCQ TrueFalse ShortAnswer"`
	OptionsJSON   json.RawMessage `json:"optionsJson"`
	CorrectAnswer string          `json:"correctAnswer"`
	Points        int             `json:"points"`
}

func (s *AssessmentService) List() ([]model.Assessment, error) {
	return s.Repo.List()
}

func (s *AssessmentService) Get(id string) (*model.Assessment, error) {
	a, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return a, err
}

// ListForStudent is the assessment-discovery path: an assessment is visible to
// a student only when it is active and the student is enrolled in its course.
func (s *AssessmentService) ListForStudent(userID string) ([]model.Assessment, error) {
	courseIDs, err := s.EnrollmentRepo.ListCourseIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListActiveByCourseIDs(courseIDs)
}

func (s *AssessmentService) Create(req AssessmentRequest) (*model.Assessment, error) {
	if _, err := s.CourseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	a := &model.Assessment{
		CourseID:  req.CourseID,
		Title:     req.Title,
		MaxScore:  req.MaxScore,
		IsActive:  isActive,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TimeLimit: req.TimeLimit,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update overwrites every mutable field; partial merges are not supported.
func (s *AssessmentService) Update(id string, req AssessmentRequest) (*model.Assessment, error) {
	a, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	} else if err != nil {
		return nil, err
	}

	a.Title = req.Title
	a.MaxScore = req.MaxScore
	a.StartDate = req.StartDate
	a.EndDate = req.EndDate
	a.TimeLimit = req.TimeLimit
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete refuses to remove an assessment that has been attempted, preserving
// historical scores. Otherwise the assessment and its questions go together.
func (s *AssessmentService) Delete(id string) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAssessmentNotFound
		}
		return err
	}
	return s.Repo.DeleteWithQuestions(id)
}

func (s *AssessmentService) ListQuestions(assessmentID string) ([]model.Question, error) {
	return s.Repo.ListQuestions(assessmentID)
}

func (s *AssessmentService) CreateQuestion(req QuestionRequest, callerID string) (*model.Question, error) {
	if err := validateQuestion(req); err != nil {
		return nil, err
	}
	if _, err := s.ownedAssessment(req.AssessmentID, callerID); err != nil {
		return nil, err
	}

	points := req.Points
	if points < 1 {
		points = 1
	}
	qType := model.QuestionType(req.Type)
	if qType == "" {
		qType = model.MCQ
	}

	q := &model.Question{
		AssessmentID:  req.AssessmentID,
		Text:          req.Text,
		Type:          qType,
		OptionsJSON:   req.OptionsJSON,
		CorrectAnswer: req.CorrectAnswer,
		Points:        points,
	}
	if err := s.Repo.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) UpdateQuestion(id string, req QuestionRequest, callerID string) (*model.Question, error) {
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	q, err := s.Repo.FindQuestionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	} else if err != nil {
		return nil, err
	}

	if _, err := s.ownedAssessment(q.AssessmentID, callerID); err != nil {
		return nil, err
	}

	q.Text = req.Text
	if req.Type != "" {
		q.Type = model.QuestionType(req.Type)
	}
	q.OptionsJSON = req.OptionsJSON
	q.CorrectAnswer = req.CorrectAnswer
	if req.Points >= 1 {
		q.Points = req.Points
	}

	if err := s.Repo.UpdateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) DeleteQuestion(id, callerID string) error {
	q, err := s.Repo.FindQuestionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuestionNotFound
	} else if err != nil {
		return err
	}

	if _, err := s.ownedAssessment(q.AssessmentID, callerID); err != nil {
		return err
	}

	return s.Repo.DeleteQuestion(id)
}

// ownedAssessment resolves the assessment and requires the caller to be the
// instructor owning its course. Question mutation is scoped to the course
// owner, not to instructors at large.
func (s *AssessmentService) ownedAssessment(assessmentID, callerID string) (*model.Assessment, error) {
	a, err := s.Repo.FindByID(assessmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	} else if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(a.CourseID)
	if err != nil {
		return nil, err
	}
	if course.InstructorID != callerID {
		return nil, util.ErrPermissionDenied
	}
	return a, nil
}

func validateQuestion(req QuestionRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return util.ErrQuestionTextRequired
	}
	if model.QuestionType(req.Type) == model.MCQ || req.Type == "" {
		if len(req.OptionsJSON) == 0 {
			return util.ErrOptionsRequired
		}
	}
	return nil
}
