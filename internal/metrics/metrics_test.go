package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg), "want registering twice to be a no-op")
}

func TestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Gin())
	r.GET("/tickets/:id/clone", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/tickets/:id/clone", "200")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/tickets/1/clone", "/tickets/2/clone"} {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		r.ServeHTTP(w, req)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestRecordClone(t *testing.T) {
	ok := ClonesTotal.WithLabelValues("MYSQL_ADD_SLAVE", CloneOK)
	failed := ClonesTotal.WithLabelValues("MYSQL_ADD_SLAVE", CloneMalformed)
	beforeOK, beforeFailed := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordClone("MYSQL_ADD_SLAVE", CloneOK, 3)
	RecordClone("MYSQL_ADD_SLAVE", CloneMalformed, 0)

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
	assert.Equal(t, beforeFailed+1, testutil.ToFloat64(failed))
}
