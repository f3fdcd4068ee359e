package repository

import (
	"context"

	"gorm.io/gorm"
)

// LoadByIDs одним запросом выбирает строки T, у которых column IN (ids),
// и раскладывает их по ключу key. Отсутствующие id в результат не попадают.
// Повторы во входном списке схлопываются.
func LoadByIDs[T any](
	ctx context.Context,
	db *gorm.DB,
	column string,
	ids []int64,
	key func(*T) int64,
) (map[int64]*T, error) {
	uniq := uniqueIDs(ids)
	out := make(map[int64]*T, len(uniq))
	if len(uniq) == 0 {
		return out, nil
	}

	var rows []T
	if err := db.WithContext(ctx).Where(column+" IN ?", uniq).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[key(&rows[i])] = &rows[i]
	}
	return out, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
