package handlers

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/models"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "Asha", "asha@example.com", "longenough", false},
		{"short password", "Asha", "asha@example.com", "short", true},
		{"bad email", "Asha", "not-an-email", "longenough", true},
		{"missing name", "", "asha@example.com", "longenough", true},
		{"email without tld", "Asha", "asha@example", "longenough", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateRegistration(tt.userName, tt.email, tt.password)
			if tt.wantErr && msg == "" {
				t.Fatal("expected validation error, got none")
			}
			if !tt.wantErr && msg != "" {
				t.Fatalf("expected no error, got %q", msg)
			}
		})
	}
}

// Login and AdminLogin share one handler; each must still log and report
// errors under its own route. Whitespace-only credentials fail before any
// database access, so the handlers run with a nil database here.
func TestLoginHandlersLogTheirOwnRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		handler   gin.HandlerFunc
		wantRoute string
	}{
		{"login", Login(nil, "secret", time.Hour), "POST /api/users/login"},
		{"admin login", AdminLogin(nil, "secret", time.Hour), "POST /api/users/admin-login"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			original := log.Writer()
			log.SetOutput(&logs)
			defer log.SetOutput(original)

			req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":" ","password":" "}`))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = req

			tc.handler(c)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(logs.String(), tc.wantRoute) {
				t.Fatalf("expected log to mention %q, got %q", tc.wantRoute, logs.String())
			}
		})
	}
}

func TestIssueUserTokenCarriesRole(t *testing.T) {
	userID := primitive.NewObjectID()
	secret := "test-secret"

	signed, err := issueUserToken(userID, models.RoleAdmin, secret, time.Hour)
	if err != nil {
		t.Fatalf("issueUserToken returned error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not verify: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["userId"] != userID.Hex() {
		t.Fatalf("expected userId claim %s, got %v", userID.Hex(), claims["userId"])
	}
	if claims["role"] != models.RoleAdmin {
		t.Fatalf("expected role claim admin, got %v", claims["role"])
	}
}

func TestIssueUserTokenRejectsWrongSecret(t *testing.T) {
	signed, err := issueUserToken(primitive.NewObjectID(), models.RoleUser, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("issueUserToken returned error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil && token.Valid {
		t.Fatal("expected verification to fail with wrong secret")
	}
}
