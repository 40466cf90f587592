package types

import (
	"os"
	"strings"
)

const ContextUserEmailKey = "userEmail"

const (
	MsgUserNotFound       = "User not found"
	MsgTopicNotFound      = "Topic not found"
	MsgPostNotFound       = "Post not found"
	MsgInvalidCredentials = "Invalid identifier or password"
	MsgNameAlreadyUsed    = "name: This username is already in use"
	MsgEmailAlreadyUsed   = "email: This e-mail address is already in use"
	MsgAuthRequired       = "Authentication required or token invalid"
)

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:4200",
		"http://localhost:3000",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
