package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNoToken        = errors.New("no access token configured")
	ErrTokenExpired   = errors.New("access token expired")
	ErrNothingPlaying = errors.New("nothing playing")
	ErrNoDisplay      = errors.New("no display output configured")
	ErrRateLimited    = errors.New("rate limited")
	ErrNetworkError   = errors.New("network error")
	ErrTimeout        = errors.New("request timeout")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// GlowError wraps an error with a user-friendly suggestion.
type GlowError struct {
	Err        error
	Suggestion string
}

func (e *GlowError) Error() string {
	return e.Err.Error()
}

func (e *GlowError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &GlowError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a GlowError with suggestion
	var glowErr *GlowError
	if errors.As(err, &glowErr) && glowErr.Suggestion != "" {
		return glowErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Token errors
	if errors.Is(err, ErrNoToken) || strings.Contains(errStr, "no access token") {
		return "Set spotify.access_token in your config, or export GLOW_SPOTIFY_ACCESS_TOKEN"
	}
	if errors.Is(err, ErrTokenExpired) || strings.Contains(errStr, "invalid access token") ||
		strings.Contains(errStr, "token expired") || strings.Contains(errStr, "401") {
		return "Your Spotify token expired. Generate a fresh one and update the config"
	}

	// Playback errors
	if errors.Is(err, ErrNothingPlaying) || strings.Contains(errStr, "nothing playing") {
		return "Start playing a track on any Spotify device"
	}

	// Rate limiting
	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") {
		return "Too many requests. Raise spotify.poll_ms and try again"
	}

	// Network errors
	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	// Display errors
	if errors.Is(err, ErrNoDisplay) {
		return "Set matrix.output to terminal, or attach a display device"
	}

	// Config errors
	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Check ~/.glowrc or ~/.config/glow/config.toml for mistakes"
	}

	// Server errors
	if strings.Contains(errStr, "500") || strings.Contains(errStr, "server error") {
		return "Spotify is having issues. Try again in a moment"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
