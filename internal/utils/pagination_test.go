package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stafflow/employee-management-api/internal/constants"
	"github.com/stretchr/testify/require"
)

func paramsForQuery(t *testing.T, query string) PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	t.Run("defaults when absent", func(t *testing.T) {
		params := paramsForQuery(t, "")
		require.Equal(t, constants.MinPageSize, params.Page)
		require.Equal(t, constants.DefaultPageSize, params.Limit)
		require.Equal(t, 0, params.Offset)
	})

	t.Run("computes offset", func(t *testing.T) {
		params := paramsForQuery(t, "page=3&limit=10")
		require.Equal(t, 3, params.Page)
		require.Equal(t, 10, params.Limit)
		require.Equal(t, 20, params.Offset)
	})

	t.Run("clamps out-of-range values", func(t *testing.T) {
		params := paramsForQuery(t, "page=0&limit=-1")
		require.Equal(t, constants.MinPageSize, params.Page)
		require.Equal(t, constants.DefaultPageSize, params.Limit)

		params = paramsForQuery(t, "limit=9999")
		require.Equal(t, constants.DefaultPageSize, params.Limit)
	})

	t.Run("non-numeric input falls back", func(t *testing.T) {
		params := paramsForQuery(t, "page=abc&limit=xyz")
		require.Equal(t, constants.MinPageSize, params.Page)
		require.Equal(t, constants.DefaultPageSize, params.Limit)
	})
}
