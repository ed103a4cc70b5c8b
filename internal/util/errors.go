package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrCourseNotFound       = errors.New("course not found")
	ErrAlreadyEnrolled      = errors.New("already enrolled in this course")
	ErrAssessmentNotFound   = errors.New("assessment not found")
	ErrAssessmentHasResults = errors.New("assessment has results and cannot be deleted")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrQuestionTextRequired = errors.New("question text is required")
	ErrOptionsRequired      = errors.New("options are required for MCQ questions")
	ErrNotEnrolled          = errors.New("not enrolled in this course")
	ErrResultNotFound       = errors.New("result not found")
)
