package supabase

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/supabase-community/supabase-go"

	"digitull1/wonderwhiz-api/config"
)

var Client *supabase.Client

// Init connects to Supabase when configured. Persistence is optional: with
// no credentials the API runs memory-only and everything below degrades to
// a no-op.
func Init() {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	if apiURL == "" || apiKey == "" {
		config.Logger.Warn("SUPABASE_URL or SUPABASE_KEY is missing, running without persistence")
		return
	}

	var err error
	Client, err = supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		config.Logger.Warn("Failed to create Supabase client, running without persistence:", err)
		Client = nil
	}
}

// Enabled reports whether persistence is configured
func Enabled() bool {
	return Client != nil
}

// ClientFromRequest builds a per-user client scoped by the caller's JWT and
// returns the user ID from the token's sub claim
func ClientFromRequest(r *http.Request) (*supabase.Client, string, error) {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "", fmt.Errorf("missing Authorization header")
	}

	jwtString := strings.TrimPrefix(authHeader, "Bearer ")
	if jwtString == "" {
		return nil, "", fmt.Errorf("invalid Authorization header")
	}

	token, _, err := new(jwt.Parser).ParseUnverified(jwtString, jwt.MapClaims{})
	if err != nil {
		return nil, "", fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", fmt.Errorf("invalid JWT claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, "", fmt.Errorf("missing sub in token")
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + jwtString,
		},
	})
	return client, sub, err
}

// UserIDFromRequest returns the authenticated user ID, or "anonymous" when
// the request carries no usable token. The chat itself never requires a
// login; persistence is simply scoped to anonymous in that case.
func UserIDFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "anonymous"
	}
	_, userID, err := ClientFromRequest(r)
	if err != nil {
		config.Logger.Debug("Could not resolve user from request: ", err)
		return "anonymous"
	}
	return userID
}
