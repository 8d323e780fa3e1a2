package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quizmaker-api/internal/domain/entity"
	"github.com/yourusername/quizmaker-api/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthTestContext создает *gin.Context с опциональным заголовком Authorization
func newAuthTestContext(authHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/api/quizzes/1", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c.Request = req
	return c, w
}

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	service, err := auth.NewJWTService("middleware-test-secret", 24)
	require.NoError(t, err)
	return service
}

func TestRequireAuth_NoHeader(t *testing.T) {
	// Arrange
	m := NewAuthMiddleware(newTestJWTService(t))
	c, w := newAuthTestContext("")

	// Act
	m.RequireAuth()(c)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted(), "Запрос без токена должен быть прерван")
}

func TestRequireAuth_BadHeaderFormat(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(t))

	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		c, w := newAuthTestContext(header)

		// Act
		m.RequireAuth()(c)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code, "Заголовок %q должен дать 401", header)
		assert.True(t, c.IsAborted())
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	// Arrange: токен подписан другим секретом
	other, err := auth.NewJWTService("other-secret", 24)
	require.NoError(t, err)
	token, err := other.GenerateToken(&entity.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	m := NewAuthMiddleware(newTestJWTService(t))
	c, w := newAuthTestContext("Bearer " + token)

	// Act
	m.RequireAuth()(c)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAuth_ValidToken(t *testing.T) {
	// Arrange
	jwtService := newTestJWTService(t)
	token, err := jwtService.GenerateToken(&entity.User{ID: 42, Email: "user@example.com"})
	require.NoError(t, err)

	m := NewAuthMiddleware(jwtService)
	c, _ := newAuthTestContext("Bearer " + token)

	// Act
	m.RequireAuth()(c)

	// Assert
	assert.False(t, c.IsAborted(), "Валидный токен должен пропускать запрос дальше")
	userID, exists := c.Get("user_id")
	require.True(t, exists)
	assert.Equal(t, uint(42), userID)
}

func TestExtractUintParam_Valid(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/quizzes/17", nil)
	c.Params = gin.Params{{Key: "id", Value: "17"}}

	// Act
	ExtractUintParam("id", "quizID")(c)

	// Assert
	assert.False(t, c.IsAborted())
	quizID, exists := c.Get("quizID")
	require.True(t, exists)
	assert.Equal(t, uint(17), quizID)
}

func TestExtractUintParam_Malformed(t *testing.T) {
	for _, bad := range []string{"abc", "12.5", "-1", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/api/quizzes/"+bad, nil)
		c.Params = gin.Params{{Key: "id", Value: bad}}

		// Act
		ExtractUintParam("id", "quizID")(c)

		// Assert: некорректный id — это 400, а не 404
		assert.Equal(t, http.StatusBadRequest, w.Code, "Параметр %q должен дать 400", bad)
		assert.True(t, c.IsAborted())
	}
}
