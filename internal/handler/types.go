package handler

import "time"

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Username string `json:"username" binding:"required"`
}

type loginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type loginUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

type loginCustomRequest struct {
	CustomToken string `json:"customToken" binding:"required"`
}

type testTokenRequest struct {
	UID string `json:"uid" binding:"required"`
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
}

type updateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type banUserRequest struct {
	UserID   string    `json:"user_id" binding:"required"`
	Reason   string    `json:"reason"`
	BannedTo time.Time `json:"banned_to"`
}

type createVotingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

type closeVotingRequest struct {
	ResultText string `json:"result_text"`
}

type voteRequest struct {
	VotingID string `json:"voting_id" binding:"required"`
}
