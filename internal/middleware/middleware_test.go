package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialExtractor(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{name: "header", header: "Bearer a.b.c", want: "Bearer a.b.c"},
		{name: "query parameter ignored", query: "?token=a.b.c", want: ""},
		{name: "authorization query ignored", query: "?authorization=Bearer%20a.b.c", want: ""},
		{name: "header with query present", header: "Bearer h.h.h", query: "?token=q.q.q", want: "Bearer h.h.h"},
		{name: "absent", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			r := gin.New()
			r.GET("/", CredentialExtractor(), func(c *gin.Context) {
				got = Credential(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateUUIDParam(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID

	r := gin.New()
	r.GET("/courses/:id", ValidateUUIDParam("id"), func(c *gin.Context) {
		got, _ = UUIDParam(c, "id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, got)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "id must be a valid UUID")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/missing?x=1", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
}

func TestRequestLogger_MasksCredentialParams(t *testing.T) {
	const jwt = "eyJhbGciOiJIUzI1NiJ9.eyJhY2NvdW50SWQiOiJ4In0.SIGNATURE"
	var buf bytes.Buffer

	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)), CredentialExtractor())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, query := range []string{
		"?token=" + jwt,
		"?Authorization=Bearer%20" + jwt,
		"?access_token=" + jwt + "&page=2",
	} {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x"+query, nil))

		assert.NotContains(t, buf.String(), "SIGNATURE")
		assert.Contains(t, buf.String(), "REDACTED")
	}
	assert.Contains(t, buf.String(), "page=2")
}

func TestRedactQuery(t *testing.T) {
	assert.Equal(t, "page=2&token=REDACTED", redactQuery("token=a.b.c&page=2"))
	assert.Equal(t, "x=1", redactQuery("x=1"))
	assert.Equal(t, "REDACTED", redactQuery("token=%zz"))
}
