package domain

import "errors"

// Application-wide standard errors
var (
	// User & profile errors
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("user profile not found")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrUserBanned      = errors.New("account is banned")

	// Voting & vote errors
	ErrVotingNotFound  = errors.New("voting not found")
	ErrVotingNotActive = errors.New("voting not found or not active")
	ErrVoteNotFound    = errors.New("vote not found")

	// Auth errors
	ErrTokenInvalid = errors.New("invalid or expired token")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")

	// General request errors
	ErrBadRequest = errors.New("bad request")
)
