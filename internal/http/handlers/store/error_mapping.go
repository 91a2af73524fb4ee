package store

import (
	"errors"
	"net/http"

	"github.com/storefront-api/internal/http/response"
	"github.com/storefront-api/internal/logger"
	"github.com/storefront-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到 HTTP 状态码的映射关系。
type mappedHandlerError struct {
	target error
	status int
}

// respondWithMappedError 按映射表响应业务错误；未命中视为内部错误，
// 记录结构化日志并把原因带进 500 响应体。
func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallback string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.status, rule.target.Error())
			return
		}
	}
	logger.Errorw("handler_unexpected_error",
		"path", c.FullPath(),
		"method", c.Request.Method,
		"error", err,
	)
	response.Internal(c, fallback+": "+err.Error())
}

var cartWriteErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidQuantity, status: http.StatusBadRequest},
	{target: service.ErrProductNotFound, status: http.StatusBadRequest},
	{target: service.ErrProductInactive, status: http.StatusBadRequest},
}

var cartRemoveErrorRules = []mappedHandlerError{
	{target: service.ErrCartItemNotFound, status: http.StatusNotFound},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCartNotFound, status: http.StatusNotFound},
	{target: service.ErrCartEmpty, status: http.StatusBadRequest},
	{target: service.ErrAddressNotFound, status: http.StatusNotFound},
	{target: service.ErrAddressNotOwned, status: http.StatusBadRequest},
	{target: service.ErrInsufficientStock, status: http.StatusConflict},
}

var productWriteErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidProductName, status: http.StatusBadRequest},
	{target: service.ErrInvalidPrice, status: http.StatusBadRequest},
	{target: service.ErrInvalidStock, status: http.StatusBadRequest},
	{target: service.ErrCategoryNotFound, status: http.StatusBadRequest},
	{target: service.ErrProductNotFound, status: http.StatusNotFound},
}

// 创建时父分类缺失是请求问题；更新/删除时目标缺失才是 404。
var categoryCreateErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCategoryName, status: http.StatusBadRequest},
	{target: service.ErrCategoryNotFound, status: http.StatusBadRequest},
}

var categoryMutateErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCategoryName, status: http.StatusBadRequest},
	{target: service.ErrCategoryNotFound, status: http.StatusNotFound},
	{target: service.ErrCategoryCycle, status: http.StatusConflict},
	{target: service.ErrCategoryInUse, status: http.StatusConflict},
}

var addressWriteErrorRules = []mappedHandlerError{
	{target: service.ErrAddressIncomplete, status: http.StatusBadRequest},
}
