package store

import (
	"context"

	"gorm.io/gorm"
)

type questionRepo struct {
	db *gorm.DB
}

func (r *questionRepo) ListByCategory(ctx context.Context, categoryID uint) ([]Question, error) {
	var questions []Question
	err := r.db.WithContext(ctx).
		Preload("Options").
		Where("category_id = ?", categoryID).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) Create(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *questionRepo) SaveActivity(ctx context.Context, cat *Category, questions []Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cat).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].CategoryID = cat.ID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
