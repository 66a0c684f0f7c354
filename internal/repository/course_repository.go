package repository

import (
	"context"

	"skillcal_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.DB.WithContext(ctx).Create(course).Error
}

// FindPublishedByLevels 查询已发布且难度在 levels 中的课程，按创建顺序返回
func (r *CourseRepository) FindPublishedByLevels(ctx context.Context, levels []model.SkillLevel) ([]model.ContentItem, error) {
	var courses []model.Course
	err := r.DB.WithContext(ctx).
		Where("is_published = ?", true).
		Where("difficulty IN ?", levels).
		Order("id asc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	items := make([]model.ContentItem, len(courses))
	for i, c := range courses {
		items[i] = c.ContentItem()
	}
	return items, nil
}
