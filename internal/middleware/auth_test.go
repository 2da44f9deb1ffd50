package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "unit-test-secret"

func signTestToken(t *testing.T, userID primitive.ObjectID, role, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID.Hex(),
		"role":   role,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func newUserAuthRouter() (*gin.Engine, *primitive.ObjectID) {
	gin.SetMode(gin.TestMode)
	var seenUserID primitive.ObjectID
	router := gin.New()
	router.GET("/protected", UserAuth(testSecret), func(c *gin.Context) {
		seenUserID = c.MustGet("userId").(primitive.ObjectID)
		c.JSON(http.StatusOK, gin.H{"role": c.MustGet("role")})
	})
	return router, &seenUserID
}

func TestUserAuthAcceptsValidToken(t *testing.T) {
	router, seenUserID := newUserAuthRouter()
	userID := primitive.NewObjectID()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID, "user", testSecret))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if *seenUserID != userID {
		t.Fatalf("expected context userId %s, got %s", userID.Hex(), seenUserID.Hex())
	}
}

func TestUserAuthRejectsBadTokens(t *testing.T) {
	router, _ := newUserAuthRouter()
	userID := primitive.NewObjectID()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc123"},
		{"malformed token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + signTestToken(t, userID, "user", "other-secret")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestUserAuthRejectsExpiredToken(t *testing.T) {
	router, _ := newUserAuthRouter()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": primitive.NewObjectID().Hex(),
		"role":   "user",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}
