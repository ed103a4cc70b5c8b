package service

import (
	"errors"
	"testing"

	"edusync_backend/internal/model"
	"edusync_backend/internal/repository"
	"edusync_backend/internal/util"

	"gorm.io/gorm"
)

func newEnrollmentService(db *gorm.DB) *EnrollmentService {
	return NewEnrollmentService(
		repository.NewEnrollmentRepository(db, nil),
		repository.NewCourseRepository(db),
	)
}

func TestEnrollUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	student := seedUser(t, db, "student1", model.Student)

	_, err := svc.Enroll(student.ID, "no-such-course")
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestEnrollTwiceIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")

	if _, err := svc.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	if _, err := svc.Enroll(student.ID, course.ID); !errors.Is(err, util.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}

	var count int64
	if err := db.Model(&model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count enrollments: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 enrollment row, got %d", count)
	}
}

// The unique index is the real guarantee: even when the pre-insert existence
// check is bypassed, the second insert must fail and map to the same conflict.
func TestEnrollUniqueIndexBacksTheCheck(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEnrollmentRepository(db, nil)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	course := seedCourse(t, db, instructor.ID, "Algebra")

	seedEnrollment(t, db, student.ID, course.ID)

	err := repo.Create(&model.Enrollment{UserID: student.ID, CourseID: course.ID})
	if err == nil {
		t.Fatal("expected duplicate insert to fail")
	}
}

func TestListMyCourses(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	instructor := seedUser(t, db, "teach1", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	algebra := seedCourse(t, db, instructor.ID, "Algebra")
	biology := seedCourse(t, db, instructor.ID, "Biology")
	seedCourse(t, db, instructor.ID, "Chemistry")

	seedEnrollment(t, db, student.ID, algebra.ID)
	seedEnrollment(t, db, student.ID, biology.ID)

	courses, err := svc.ListMyCourses(student.ID)
	if err != nil {
		t.Fatalf("list my courses: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}

	titles := map[string]bool{}
	for _, c := range courses {
		titles[c.Title] = true
	}
	if !titles["Algebra"] || !titles["Biology"] {
		t.Fatalf("unexpected course set: %v", titles)
	}
}

func TestRosterScopedToInstructor(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)
	owner := seedUser(t, db, "teach1", model.Instructor)
	other := seedUser(t, db, "teach2", model.Instructor)
	student := seedUser(t, db, "student1", model.Student)
	ownCourse := seedCourse(t, db, owner.ID, "Algebra")
	otherCourse := seedCourse(t, db, other.ID, "Biology")

	seedEnrollment(t, db, student.ID, ownCourse.ID)
	seedEnrollment(t, db, student.ID, otherCourse.ID)

	roster, err := svc.Roster(owner.ID)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(roster) != 1 {
		t.Fatalf("expected 1 roster entry, got %d", len(roster))
	}
	if roster[0].CourseTitle != "Algebra" || roster[0].StudentName != "student1" {
		t.Fatalf("unexpected roster entry: %+v", roster[0])
	}
}
