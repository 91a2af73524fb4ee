package repository

import (
	"strings"
)

// buildSearchCondition 构建多列大小写不敏感的子串匹配条件。
// LOWER + LIKE 在 sqlite 与 postgres 下行为一致，postgres 的 ILIKE 则不可移植。
func buildSearchCondition(columns []string) string {
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, "LOWER("+column+") LIKE ?")
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// buildSearchArgs 为每列生成一个小写 LIKE 参数。
func buildSearchArgs(search string, columnCount int) []interface{} {
	like := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
	args := make([]interface{}, 0, columnCount)
	for i := 0; i < columnCount; i++ {
		args = append(args, like)
	}
	return args
}
