package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Pagination describes a window's position relative to the full result set,
// so the client can render page controls without a second round trip.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// pageQuery reads page/limit query params. Absent, non-numeric or
// non-positive values fall back to the defaults.
func pageQuery(c *gin.Context) (page, limit int) {
	page = cast.ToInt(c.Query("page"))
	if page < 1 {
		page = defaultPage
	}
	limit = cast.ToInt(c.Query("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// paginate computes the envelope for a window. totalPages never drops below
// one, so an empty table still reports page 1 of 1.
func paginate(page, limit int, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		Page:        page,
		Limit:       limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
