package repository

import (
	"context"
	"edusync_backend/internal/model"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const enrolledCoursesTTL = 5 * time.Minute

type EnrollmentRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewEnrollmentRepository(db *gorm.DB, rdb *redis.Client) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db, RDB: rdb}
}

// RosterEntry is one row of the instructor roster view: an enrollment joined
// with the student and the course it belongs to.
type RosterEntry struct {
	UserID       string    `json:"userId"`
	StudentName  string    `json:"studentName"`
	StudentEmail string    `json:"studentEmail"`
	CourseID     string    `json:"courseId"`
	CourseTitle  string    `json:"courseTitle"`
	EnrolledOn   time.Time `json:"enrolledOn"`
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	if err := r.DB.Create(enrollment).Error; err != nil {
		return err
	}
	r.invalidateCourseIDs(enrollment.UserID)
	return nil
}

func (r *EnrollmentRepository) Exists(userID, courseID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) ListCoursesByUser(userID string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ? AND enrollments.deleted_at IS NULL", userID).
		Find(&courses).Error
	return courses, err
}

// ListCourseIDs returns the ids of the courses the user is enrolled in. The
// set is cached in Redis since it sits on the assessment-discovery hot path;
// Create invalidates it.
func (r *EnrollmentRepository) ListCourseIDs(userID string) ([]string, error) {
	key := courseIDsKey(userID)

	if r.RDB != nil {
		if cached, err := r.RDB.Get(context.Background(), key).Result(); err == nil {
			var ids []string
			if err := json.Unmarshal([]byte(cached), &ids); err == nil {
				return ids, nil
			}
		}
	}

	var ids []string
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ?", userID).
		Pluck("course_id", &ids).Error
	if err != nil {
		return nil, err
	}

	if r.RDB != nil {
		if data, err := json.Marshal(ids); err == nil {
			r.RDB.Set(context.Background(), key, data, enrolledCoursesTTL)
		}
	}

	return ids, nil
}

func (r *EnrollmentRepository) RosterByInstructor(instructorID string) ([]RosterEntry, error) {
	var entries []RosterEntry
	err := r.DB.Model(&model.Enrollment{}).
		Select(`enrollments.user_id,
			users.name as student_name,
			users.email as student_email,
			enrollments.course_id,
			courses.title as course_title,
			enrollments.enrolled_on`).
		Joins("JOIN users ON users.id = enrollments.user_id").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.instructor_id = ?", instructorID).
		Where("users.deleted_at IS NULL AND courses.deleted_at IS NULL").
		Scan(&entries).Error
	return entries, err
}

func (r *EnrollmentRepository) invalidateCourseIDs(userID string) {
	if r.RDB == nil {
		return
	}
	r.RDB.Del(context.Background(), courseIDsKey(userID))
}

func courseIDsKey(userID string) string {
	return fmt.Sprintf("enrollments:user:%s:courses", userID)
}
