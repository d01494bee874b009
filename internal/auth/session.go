package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

var SESSION_NAME = "____th"

// Sessions live server-side in redis; the client only ever holds the
// opaque key. TTL matches the 24h admin login window.
const SessionTTL = 24 * time.Hour

type UserSession struct {
	ExpiresAt time.Time          `json:"expiresAt"`
	UserId    primitive.ObjectID `json:"userId"`
	Email     string             `json:"email"`
	Role      models.UserRole    `json:"role"`
}

func (s UserSession) MarshalBinary() ([]byte, error) {
	return json.Marshal(s)
}

func (s *UserSession) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, s)
}

// Checks if user session is expired.
func (s UserSession) Expired() bool {
	return s.ExpiresAt.Before(time.Now())
}

// Set new user login session
func SetSession(ctx *gin.Context, userId primitive.ObjectID, email string, role models.UserRole) (string, error) {
	key := GenerateSecureToken(20)
	sessExpTime := time.Now().Add(SessionTTL)
	value := UserSession{
		UserId:    userId,
		Email:     email,
		Role:      role,
		ExpiresAt: sessExpTime,
	}

	domain := getDomainFromRequest(ctx)
	secure := isHTTPS(ctx)

	ctx.SetCookie(SESSION_NAME, key, int(SessionTTL.Seconds()), "/", domain, secure, true)
	return key, util.REDIS.Set(ctx, key, value, SessionTTL).Err()
}

func getDomainFromRequest(ctx *gin.Context) string {
	host := ctx.Request.Host

	// Remove port
	if colonIndex := strings.LastIndex(host, ":"); colonIndex != -1 {
		host = host[:colonIndex]
	}

	if host == "localhost" || host == "127.0.0.1" {
		return "localhost"
	}

	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		return "." + strings.Join(parts[len(parts)-2:], ".")
	}

	return host
}

func isHTTPS(ctx *gin.Context) bool {
	if ctx.Request.TLS != nil {
		return true
	}

	if ctx.GetHeader("X-Forwarded-Proto") == "https" {
		return true
	}

	return false
}

// Get user login session by key
func GetSession(ctx *gin.Context, key string) (UserSession, error) {
	value, err := util.REDIS.Get(ctx, key).Result()
	if err != nil {
		return UserSession{}, err
	}

	var session UserSession
	err = json.Unmarshal([]byte(value), &session)
	if err != nil {
		return UserSession{}, err
	}

	return session, nil
}

// GetSessionAuto resolves the session from the Authorization header.
func GetSessionAuto(ctx *gin.Context) (UserSession, error) {
	key, err := ExtractSessionKey(ctx)
	if err != nil {
		return UserSession{}, err
	}
	return GetSession(ctx, key)
}

// Delete user session
func DeleteSession(ctx *gin.Context) {
	key, err := ExtractSessionKey(ctx)
	if err != nil {
		if key, err = ctx.Cookie(SESSION_NAME); err != nil {
			log.Println(err)
			return
		}
	}

	if err := util.REDIS.Del(ctx, key).Err(); err != nil {
		log.Println(err)
	}

	ctx.SetCookie(SESSION_NAME, "", 0, "/", getDomainFromRequest(ctx), isHTTPS(ctx), true)
}

// Extract session token from request header.
func ExtractSessionKey(ctx *gin.Context) (string, error) {
	key := ctx.Request.Header.Get("Authorization")
	return ExtractBearerToken(key)
}

// ExtractBearerToken extracts the Bearer token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("authorization header is empty")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", fmt.Errorf("authorization header does not start with 'Bearer '")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", fmt.Errorf("token is empty")
	}

	return token, nil
}
