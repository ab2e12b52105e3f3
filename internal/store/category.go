package store

import (
	"context"

	"gorm.io/gorm"
)

type categoryRepo struct {
	db *gorm.DB
}

func (r *categoryRepo) List(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *categoryRepo) Create(ctx context.Context, cat *Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *categoryRepo) Recent(ctx context.Context, limit int) ([]Category, error) {
	if limit <= 0 {
		limit = 10
	}
	var cats []Category
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}
