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

type ResultService struct {
	Repo           *repository.ResultRepository
	AssessmentRepo *repository.AssessmentRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewResultService(repo *repository.ResultRepository, assessmentRepo *repository.AssessmentRepository, enrollmentRepo *repository.EnrollmentRepository) *ResultService {
	return &ResultService{
		Repo:           repo,
		AssessmentRepo: assessmentRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

type AnswerSubmission struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// SubmitAttemptRequest carries one attempt. A client-computed score is
// accepted in the payload for backward compatibility but never persisted; the
// score stored on the result comes from the server-side recomputation.
type SubmitAttemptRequest struct {
	AssessmentID string             `json:"assessmentId" binding:"required"`
	Answers      []AnswerSubmission `json:"answers"`
	Score        int                `json:"score"`
	TimeTaken    *int               `json:"timeTaken"`
	IsCompleted  bool               `json:"isCompleted"`
}

type ResultUpdateRequest struct {
	Score       int             `json:"score"`
	AttemptDate time.Time       `json:"attemptDate"`
	Answers     json.RawMessage `json:"answers"`
	TimeTaken   *int            `json:"timeTaken"`
	IsCompleted bool            `json:"isCompleted"`
}

// Submit records one attempt as a new result row. The caller's identity comes
// from the verified token, never from the payload, and a caller who is not
// enrolled in the assessment's course is refused before anything is written.
func (s *ResultService) Submit(userID string, req SubmitAttemptRequest) (*model.Result, error) {
	assessment, err := s.AssessmentRepo.FindByID(req.AssessmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	} else if err != nil {
		return nil, err
	}

	enrolled, err := s.EnrollmentRepo.Exists(userID, assessment.CourseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, util.ErrNotEnrolled
	}

	questions, err := s.AssessmentRepo.ListQuestions(assessment.ID)
	if err != nil {
		return nil, err
	}
	score := scoreAttempt(questions, req.Answers)

	answerMap := make(map[string]string, len(req.Answers))
	for _, a := range req.Answers {
		answerMap[a.QuestionID] = a.Answer
	}
	answersJSON, err := json.Marshal(answerMap)
	if err != nil {
		return nil, err
	}

	result := &model.Result{
		AssessmentID: assessment.ID,
		UserID:       userID,
		Score:        score,
		AttemptDate:  time.Now().UTC(),
		Answers:      answersJSON,
		TimeTaken:    req.TimeTaken,
		IsCompleted:  req.IsCompleted,
	}
	if err := s.Repo.Create(result); err != nil {
		return nil, err
	}
	return result, nil
}

// scoreAttempt compares each submitted answer against the stored correct
// answer, case-insensitively and ignoring surrounding whitespace, and sums the
// points of the matches. Questions without a stored correct answer score zero.
func scoreAttempt(questions []model.Question, answers []AnswerSubmission) int {
	submitted := make(map[string]string, len(answers))
	for _, a := range answers {
		submitted[a.QuestionID] = a.Answer
	}

	score := 0
	for _, q := range questions {
		if q.CorrectAnswer == "" {
			continue
		}
		answer, ok := submitted[q.ID]
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer)) {
			score += q.Points
		}
	}
	return score
}

func (s *ResultService) List() ([]model.Result, error) {
	return s.Repo.List()
}

func (s *ResultService) Get(id string) (*model.Result, error) {
	result, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResultNotFound
	}
	return result, err
}

func (s *ResultService) Update(id string, req ResultUpdateRequest) (*model.Result, error) {
	result, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResultNotFound
	} else if err != nil {
		return nil, err
	}

	result.Score = req.Score
	result.AttemptDate = req.AttemptDate
	result.Answers = req.Answers
	result.TimeTaken = req.TimeTaken
	result.IsCompleted = req.IsCompleted

	if err := s.Repo.Update(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ResultService) Delete(id string) error {
	if _, err := s.Repo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrResultNotFound
	} else if err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
