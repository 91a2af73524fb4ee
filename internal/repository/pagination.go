package repository

import "gorm.io/gorm"

// applyLimitOffset 应用分页参数，统一处理非法偏移量。
func applyLimitOffset(query *gorm.DB, limit, offset int) *gorm.DB {
	if query == nil {
		return query
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
