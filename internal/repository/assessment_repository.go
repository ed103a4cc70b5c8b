package repository

import (
	"edusync_backend/internal/model"
	"edusync_backend/internal/util"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) FindByID(id string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("Course").First(&a, "id = ?", id).Error
	return &a, err
}

func (r *AssessmentRepository) List() ([]model.Assessment, error) {
	var as []model.Assessment
	err := r.DB.Preload("Course").Order("created_at desc").Find(&as).Error
	return as, err
}

func (r *AssessmentRepository) ListActiveByCourseIDs(courseIDs []string) ([]model.Assessment, error) {
	if len(courseIDs) == 0 {
		return []model.Assessment{}, nil
	}
	var as []model.Assessment
	err := r.DB.Preload("Course").
		Where("is_active = ? AND course_id IN ?", true, courseIDs).
		Find(&as).Error
	return as, err
}

func (r *AssessmentRepository) Update(a *model.Assessment) error {
	return r.DB.Save(a).Error
}

// DeleteWithQuestions removes an assessment and its questions in one
// transaction. The result-existence check runs inside the same transaction so
// a concurrent submission cannot slip between the guard and the delete.
func (r *AssessmentRepository) DeleteWithQuestions(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Result{}).Where("assessment_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return util.ErrAssessmentHasResults
		}
		if err := tx.Where("assessment_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Assessment{}, "id = ?", id).Error
	})
}

// Question sub-resource.

func (r *AssessmentRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *AssessmentRepository) FindQuestionByID(id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, "id = ?", id).Error
	return &q, err
}

func (r *AssessmentRepository) ListQuestions(assessmentID string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("assessment_id = ?", assessmentID).
		Order("created_at asc").
		Find(&qs).Error
	return qs, err
}

func (r *AssessmentRepository) UpdateQuestion(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *AssessmentRepository) DeleteQuestion(id string) error {
	return r.DB.Delete(&model.Question{}, "id = ?", id).Error
}
