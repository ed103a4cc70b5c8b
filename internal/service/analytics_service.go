package service

import (
	"edusync_backend/internal/repository"
	"edusync_backend/internal/util"
	"time"
)

type AnalyticsService struct {
	ResultRepo *repository.ResultRepository
	CourseRepo *repository.CourseRepository
}

func NewAnalyticsService(resultRepo *repository.ResultRepository, courseRepo *repository.CourseRepository) *AnalyticsService {
	return &AnalyticsService{ResultRepo: resultRepo, CourseRepo: courseRepo}
}

type AttemptSummary struct {
	Score       int       `json:"score"`
	AttemptDate time.Time `json:"attemptDate"`
	TimeTaken   *int      `json:"timeTaken,omitempty"`
}

// StudentAssessmentAnalytics is one (student, assessment) group of the
// instructor analytics view. Attempts are chronologically ascending.
type StudentAssessmentAnalytics struct {
	StudentID       string           `json:"studentId"`
	StudentName     string           `json:"studentName"`
	AssessmentID    string           `json:"assessmentId"`
	AssessmentTitle string           `json:"assessmentTitle"`
	Attempts        []AttemptSummary `json:"attempts"`
	BestScore       int              `json:"bestScore"`
}

type UserAttempt struct {
	ResultID    string    `json:"resultId"`
	Score       int       `json:"score"`
	AttemptDate time.Time `json:"attemptDate"`
	Percentage  float64   `json:"percentage"`
}

// UserAssessmentResults groups a user's attempts for one assessment, newest
// attempt first for display.
type UserAssessmentResults struct {
	AssessmentID    string        `json:"assessmentId"`
	AssessmentTitle string        `json:"assessmentTitle"`
	Attempts        []UserAttempt `json:"attempts"`
	BestScore       int           `json:"bestScore"`
}

// CourseAnalytics builds the per-student attempt history for every assessment
// in the course. Only the owning instructor may read it.
func (s *AnalyticsService) CourseAnalytics(courseID, instructorID string) ([]StudentAssessmentAnalytics, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil || course.InstructorID != instructorID {
		return nil, util.ErrPermissionDenied
	}

	results, err := s.ResultRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		userID       string
		assessmentID string
	}

	groups := make(map[groupKey]int)
	analytics := make([]StudentAssessmentAnalytics, 0)

	// Results arrive ordered by attempt date, so appending keeps each
	// group's attempts chronological.
	for _, r := range results {
		key := groupKey{userID: r.UserID, assessmentID: r.AssessmentID}
		idx, ok := groups[key]
		if !ok {
			entry := StudentAssessmentAnalytics{
				StudentID:    r.UserID,
				AssessmentID: r.AssessmentID,
			}
			if r.User != nil {
				entry.StudentName = r.User.Name
			}
			if r.Assessment != nil {
				entry.AssessmentTitle = r.Assessment.Title
			}
			analytics = append(analytics, entry)
			idx = len(analytics) - 1
			groups[key] = idx
		}

		analytics[idx].Attempts = append(analytics[idx].Attempts, AttemptSummary{
			Score:       r.Score,
			AttemptDate: r.AttemptDate,
			TimeTaken:   r.TimeTaken,
		})
		if r.Score > analytics[idx].BestScore {
			analytics[idx].BestScore = r.Score
		}
	}

	return analytics, nil
}

// ResultsByUser groups a user's attempts by assessment with per-attempt
// percentages. A missing assessment record or a non-positive max score falls
// back to a divisor of 1 rather than failing the whole view.
func (s *AnalyticsService) ResultsByUser(userID string) ([]UserAssessmentResults, error) {
	results, err := s.ResultRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]int)
	grouped := make([]UserAssessmentResults, 0)

	for _, r := range results {
		idx, ok := groups[r.AssessmentID]
		if !ok {
			entry := UserAssessmentResults{AssessmentID: r.AssessmentID}
			if r.Assessment != nil {
				entry.AssessmentTitle = r.Assessment.Title
			}
			grouped = append(grouped, entry)
			idx = len(grouped) - 1
			groups[r.AssessmentID] = idx
		}

		maxScore := 1
		if r.Assessment != nil && r.Assessment.MaxScore > 0 {
			maxScore = r.Assessment.MaxScore
		}

		grouped[idx].Attempts = append(grouped[idx].Attempts, UserAttempt{
			ResultID:    r.ID,
			Score:       r.Score,
			AttemptDate: r.AttemptDate,
			Percentage:  float64(r.Score) * 100.0 / float64(maxScore),
		})
		if r.Score > grouped[idx].BestScore {
			grouped[idx].BestScore = r.Score
		}
	}

	return grouped, nil
}
