package service

import (
	"edusync_backend/internal/model"
	"edusync_backend/internal/repository"
	"edusync_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type CourseService struct {
	Repo *repository.CourseRepository
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

type CourseRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	InstructorID string `json:"instructorId" binding:"required"`
	MediaURL     string `json:"mediaUrl"`
}

func (s *CourseService) List() ([]model.Course, error) {
	return s.Repo.List()
}

func (s *CourseService) Get(id string) (*model.Course, error) {
	course, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

// Create rejects a payload whose instructorId differs from the authenticated
// caller, so a course is always owned by the instructor who created it.
func (s *CourseService) Create(req CourseRequest, callerID string) (*model.Course, error) {
	if req.InstructorID != callerID {
		return nil, util.ErrPermissionDenied
	}

	course := &model.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: callerID,
		MediaURL:     req.MediaURL,
		IsActive:     true,
	}
	if err := s.Repo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Update(id string, req CourseRequest, callerID string) (*model.Course, error) {
	course, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}

	if course.InstructorID != callerID {
		return nil, util.ErrPermissionDenied
	}

	course.Title = req.Title
	course.Description = req.Description
	course.MediaURL = req.MediaURL

	if err := s.Repo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete requires ownership: only the owning instructor may remove a course.
func (s *CourseService) Delete(id, callerID string) error {
	course, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	} else if err != nil {
		return err
	}

	if course.InstructorID != callerID {
		return util.ErrPermissionDenied
	}

	return s.Repo.Delete(id)
}

func (s *CourseService) SetMediaURL(id, url, callerID string) (*model.Course, error) {
	course, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}

	if course.InstructorID != callerID {
		return nil, util.ErrPermissionDenied
	}

	course.MediaURL = url
	if err := s.Repo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}
