package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c
}

func TestPageQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		page, limit := pageQuery(testContext(t, "/api/orders"))
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, limit)
	})

	t.Run("Explicit", func(t *testing.T) {
		page, limit := pageQuery(testContext(t, "/api/orders?page=3&limit=25"))
		assert.Equal(t, 3, page)
		assert.Equal(t, 25, limit)
	})

	t.Run("NonNumeric", func(t *testing.T) {
		page, limit := pageQuery(testContext(t, "/api/orders?page=abc&limit=xyz"))
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, limit)
	})

	t.Run("NonPositive", func(t *testing.T) {
		page, limit := pageQuery(testContext(t, "/api/orders?page=-2&limit=0"))
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, limit)
	})
}

func TestPaginate(t *testing.T) {
	t.Run("MiddlePage", func(t *testing.T) {
		p := paginate(2, 10, 35)
		assert.Equal(t, 4, p.TotalPages)
		assert.Equal(t, int64(35), p.TotalItems)
		assert.True(t, p.HasNextPage)
		assert.True(t, p.HasPrevPage)
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		p := paginate(2, 10, 15)
		assert.Equal(t, Pagination{
			Page:        2,
			Limit:       10,
			TotalItems:  15,
			TotalPages:  2,
			HasNextPage: false,
			HasPrevPage: true,
		}, p)
	})

	t.Run("EmptyTable", func(t *testing.T) {
		p := paginate(1, 10, 0)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNextPage)
		assert.False(t, p.HasPrevPage)
	})

	t.Run("ExactMultiple", func(t *testing.T) {
		p := paginate(3, 5, 15)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasNextPage)
	})

	t.Run("CeilingNeverBelowOne", func(t *testing.T) {
		for _, tc := range []struct {
			total int64
			limit int
			pages int
		}{
			{0, 10, 1},
			{1, 10, 1},
			{10, 10, 1},
			{11, 10, 2},
			{99, 10, 10},
			{100, 10, 10},
			{101, 10, 11},
			{7, 3, 3},
		} {
			p := paginate(1, tc.limit, tc.total)
			assert.Equalf(t, tc.pages, p.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
		}
	})
}
