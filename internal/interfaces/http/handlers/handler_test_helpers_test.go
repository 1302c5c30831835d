package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"marketplace.backend/internal/domain/entities"
	"marketplace.backend/internal/interfaces/http/middleware"
)

func newTestRouter(identity *entities.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if identity != nil {
		id := *identity
		r.Use(func(c *gin.Context) {
			c.Set(middleware.IdentityKey, id)
			c.Next()
		})
	}
	return r
}

func customerIdentity() *entities.Identity {
	return &entities.Identity{SubjectID: uuid.New(), Role: entities.RoleCustomer}
}

func merchantIdentity() *entities.Identity {
	return &entities.Identity{SubjectID: uuid.New(), Role: entities.RoleMerchant}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
