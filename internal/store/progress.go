package store

import (
	"context"

	"gorm.io/gorm"
)

type progressRepo struct {
	db *gorm.DB
}

func (r *progressRepo) Create(ctx context.Context, p *GameProgress) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *progressRepo) BySession(ctx context.Context, session string) ([]GameProgress, error) {
	var records []GameProgress
	err := r.db.WithContext(ctx).
		Where("student_session = ?", session).
		Order("completed_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return r.fillCategoryNames(ctx, records)
}

func (r *progressRepo) Recent(ctx context.Context, limit int) ([]GameProgress, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []GameProgress
	err := r.db.WithContext(ctx).
		Order("completed_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return r.fillCategoryNames(ctx, records)
}

// fillCategoryNames resolves the display name for each progress record.
// A missing category leaves the name empty rather than failing the query.
func (r *progressRepo) fillCategoryNames(ctx context.Context, records []GameProgress) ([]GameProgress, error) {
	if len(records) == 0 {
		return records, nil
	}
	ids := make([]uint, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.CategoryID)
	}
	var cats []Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cats).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	for i := range records {
		records[i].CategoryName = names[records[i].CategoryID]
	}
	return records, nil
}
