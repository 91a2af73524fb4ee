package store

import (
	"strconv"
	"strings"

	"github.com/storefront-api/internal/constants"
	"github.com/storefront-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// requireUintQuery 解析必填的数字查询参数，缺失或非法直接响应 400。
func requireUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		response.BadRequest(c, name+" is required")
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		response.BadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return uint(value), true
}

// optionalUintQuery 解析可选的数字查询参数，非法输入按未提供处理。
func optionalUintQuery(c *gin.Context, name string) *uint {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	result := uint(value)
	return &result
}

// parseLimitOffset 解析分页参数并夹取到合法区间。
// 非数字输入回退到默认值，limit 上限 constants.MaxListLimit。
func parseLimitOffset(c *gin.Context, defaultLimit int) (int, int) {
	limit := defaultLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > constants.MaxListLimit {
		limit = constants.MaxListLimit
	}

	offset := 0
	if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}
	return limit, offset
}
