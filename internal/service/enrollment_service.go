package service

import (
	"edusync_backend/internal/model"
	"edusync_backend/internal/repository"
	"edusync_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	Repo       *repository.EnrollmentRepository
	CourseRepo *repository.CourseRepository
}

func NewEnrollmentService(repo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{Repo: repo, CourseRepo: courseRepo}
}

// Enroll records the student's enrollment in a course. The existence check
// gives the friendly conflict answer; the unique index on (user_id, course_id)
// is what makes the guarantee hold under concurrent calls, so a duplicate-key
// error from the insert maps to the same conflict.
func (s *EnrollmentService) Enroll(userID, courseID string) (*model.Enrollment, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	exists, err := s.Repo.Exists(userID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyEnrolled
	}

	enrollment := &model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledOn: time.Now().UTC(),
	}
	if err := s.Repo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListMyCourses(userID string) ([]model.Course, error) {
	return s.Repo.ListCoursesByUser(userID)
}

func (s *EnrollmentService) IsEnrolled(userID, courseID string) (bool, error) {
	return s.Repo.Exists(userID, courseID)
}

func (s *EnrollmentService) Roster(instructorID string) ([]repository.RosterEntry, error) {
	return s.Repo.RosterByInstructor(instructorID)
}
