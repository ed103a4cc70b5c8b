package repository

import (
	"edusync_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Create(result *model.Result) error {
	return r.DB.Create(result).Error
}

func (r *ResultRepository) FindByID(id string) (*model.Result, error) {
	var result model.Result
	err := r.DB.Preload("Assessment").Preload("User").First(&result, "id = ?", id).Error
	return &result, err
}

func (r *ResultRepository) List() ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Preload("Assessment").Preload("User").Find(&results).Error
	return results, err
}

// ListByUser returns the user's attempts newest-first, assessments preloaded
// for title and max-score lookups.
func (r *ResultRepository) ListByUser(userID string) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Preload("Assessment").
		Where("user_id = ?", userID).
		Order("attempt_date desc").
		Find(&results).Error
	return results, err
}

// ListByCourse returns every attempt against the course's assessments,
// chronologically ascending, with student and assessment preloaded.
func (r *ResultRepository) ListByCourse(courseID string) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Preload("Assessment").Preload("User").
		Joins("JOIN assessments ON assessments.id = results.assessment_id").
		Where("assessments.course_id = ? AND assessments.deleted_at IS NULL", courseID).
		Order("results.attempt_date asc").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) Update(result *model.Result) error {
	return r.DB.Save(result).Error
}

func (r *ResultRepository) Delete(id string) error {
	return r.DB.Delete(&model.Result{}, "id = ?", id).Error
}
