package api

import (
	"context"
	"strconv"

	"github.com/labstack/echo"

	"github.com/akojamsy/voting-system/types"
	"github.com/akojamsy/voting-system/utils"
)

func getPagingOption(c echo.Context) (*types.Pagination, int, int) {
	pageParams := c.QueryParam("page")
	limitParams := c.QueryParam("limit")
	if pageParams == "" && limitParams == "" {
		return nil, 0, 0
	}
	page, err := strconv.Atoi(pageParams)
	if err != nil || page < 1 {
		page = 1
	}
	if page > types.MaximumPage {
		page = types.MaximumPage
	}
	page = page - 1
	limit, err := strconv.Atoi(limitParams)
	if err != nil {
		limit = 25
	}
	pagination := &types.Pagination{
		Skip:  page * limit,
		Limit: limit,
	}
	pagination.Sanitize()
	pagination.Skip = page * pagination.Limit
	return pagination, page + 1, pagination.Limit
}

func paramID(c echo.Context, name string) (int64, bool) {
	return utils.StrToInt64(c.Param(name))
}

func (s *Server) requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), s.timeout)
}
