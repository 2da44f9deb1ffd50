package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Fawaz-003/Ecommerce-ModeX-sub000/internal/models"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func googleOAuthConfig(clientID, clientSecret, callbackURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  callbackURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleLogin starts the OAuth redirect flow.
func GoogleLogin(clientID, clientSecret, callbackURL string) gin.HandlerFunc {
	conf := googleOAuthConfig(clientID, clientSecret, callbackURL)
	return func(c *gin.Context) {
		state := randomState()
		c.SetCookie("oauth_state", state, 300, "/", "", false, true)
		c.Redirect(http.StatusTemporaryRedirect, conf.AuthCodeURL(state))
	}
}

// GoogleCallback exchanges the code, upserts the user and redirects back to
// the frontend with the token in a query parameter.
func GoogleCallback(db *mongo.Database, clientID, clientSecret, callbackURL, frontendURL, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	conf := googleOAuthConfig(clientID, clientSecret, callbackURL)
	return func(c *gin.Context) {
		const route = "GET /api/users/google/callback"
		defer handlePanic(c, route)

		state, err := c.Cookie("oauth_state")
		if err != nil || state == "" || state != c.Query("state") {
			respondWithError(c, http.StatusBadRequest, route, "invalid oauth state")
			return
		}

		code := strings.TrimSpace(c.Query("code"))
		if code == "" {
			respondWithError(c, http.StatusBadRequest, route, "missing code")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		token, err := conf.Exchange(ctx, code)
		if err != nil {
			log.Println("[AUTH] [ERROR] google code exchange failed:", err)
			respondWithError(c, http.StatusUnauthorized, route, "code exchange failed")
			return
		}

		info, err := fetchGoogleUserInfo(ctx, conf, token)
		if err != nil {
			log.Println("[AUTH] [ERROR] google userinfo fetch failed:", err)
			respondWithError(c, http.StatusUnauthorized, route, "userinfo fetch failed")
			return
		}

		email := strings.ToLower(strings.TrimSpace(info.Email))
		if email == "" {
			respondWithError(c, http.StatusUnauthorized, route, "google account has no email")
			return
		}

		user, err := upsertGoogleUser(ctx, db, email, info.Name, info.Picture)
		if err != nil {
			log.Println("[AUTH] [ERROR] google user upsert failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		signed, err := issueUserToken(user.ID, user.Role, jwtSecret, accessTTL)
		if err != nil {
			log.Println("[AUTH] [ERROR] google token generation failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		log.Println("[AUTH] [INFO] google login succeeded:", email)
		c.Redirect(http.StatusFound, frontendURL+"/oauth?token="+url.QueryEscape(signed))
	}
}

func fetchGoogleUserInfo(ctx context.Context, conf *oauth2.Config, token *oauth2.Token) (googleUserInfo, error) {
	client := conf.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return googleUserInfo{}, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return googleUserInfo{}, err
	}
	return info, nil
}

// upsertGoogleUser creates the account on first sign-in (no password
// credential, provider avatar) and refreshes the avatar on later sign-ins.
func upsertGoogleUser(ctx context.Context, db *mongo.Database, email, name, picture string) (models.User, error) {
	var user models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == nil {
		update := bson.M{"avatar": picture, "updatedAt": time.Now()}
		if _, err := db.Collection("users").UpdateByID(ctx, user.ID, bson.M{"$set": update}); err != nil {
			return models.User{}, err
		}
		user.Avatar = picture
		return user, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	now := time.Now()
	user = models.User{
		Name:      strings.TrimSpace(name),
		Email:     email,
		Role:      models.RoleUser,
		Avatar:    picture,
		Provider:  "google",
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	user.ID, _ = res.InsertedID.(primitive.ObjectID)

	if _, err := db.Collection("profiles").InsertOne(ctx, models.NewProfile(user.ID)); err != nil {
		log.Println("[AUTH] [ERROR] google profile create failed:", err)
	}

	return user, nil
}

func randomState() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	return hex.EncodeToString(buf)
}
