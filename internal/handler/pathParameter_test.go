package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xfwduke/blueking-dbm/internal/errdef"
)

func TestGetPathParameter(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.AddParam("id", "123")

		id, ok := GetPathParameter(ctx, "id")

		assert.True(t, ok)
		assert.Equal(t, uint(123), id)
		assert.Empty(t, ctx.Errors)
	})

	for name, value := range map[string]string{"Missing": "", "NotANumber": "abc", "Zero": "0", "Negative": "-1"} {
		t.Run(name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			if value != "" {
				ctx.AddParam("id", value)
			}

			id, ok := GetPathParameter(ctx, "id")

			assert.False(t, ok)
			assert.Equal(t, uint(0), id)
			require.Len(t, ctx.Errors, 1)
			assert.True(t, errdef.IsBadRequest(ctx.Errors.Last()))
		})
	}
}
