package repository

import (
	"context"
	"errors"

	"parlamento/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormTable holds the single-row statements shared by every SQL repository.
// Rows are always addressed by their own primary key.
type gormTable[M any] struct {
	db    *gorm.DB
	order string
}

func (t gormTable[M]) list(ctx context.Context) ([]M, error) {
	var rows []M
	q := t.db.WithContext(ctx)
	if t.order != "" {
		q = q.Order(t.order)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (t gormTable[M]) get(ctx context.Context, tx *gorm.DB, id string) (M, bool, error) {
	if tx == nil {
		tx = t.db.WithContext(ctx)
	}
	var row M
	err := tx.Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, false, nil
	}
	if err != nil {
		return row, false, err
	}
	return row, true, nil
}

// create inserts row and reports interfaces.ErrAlreadyExists when the id is
// taken (INSERT ... ON CONFLICT DO NOTHING).
func (t gormTable[M]) create(ctx context.Context, row *M) error {
	res := t.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrAlreadyExists
	}
	return nil
}

// update writes only cols and returns the stored row. Columns not present in
// cols keep their value.
func (t gormTable[M]) update(ctx context.Context, id string, cols map[string]interface{}) (M, bool, error) {
	var (
		out   M
		found bool
	)
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, ok, err := t.get(ctx, tx, id)
		if err != nil || !ok {
			return err
		}
		if len(cols) > 0 {
			var model M
			if err := tx.Model(&model).Where("id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
		}
		out, found, err = t.get(ctx, tx, id)
		return err
	})
	return out, found, err
}

func (t gormTable[M]) delete(ctx context.Context, id string) (bool, error) {
	var model M
	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
