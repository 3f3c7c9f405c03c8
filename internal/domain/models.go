package domain

import "time"

// User statuses stored in the users collection.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBanned   = "banned"
)

// Voting statuses. Deletion is logical: a voting is never removed from the
// store, its status is flipped to deleted instead.
const (
	VotingStatusActive  = "active"
	VotingStatusClosed  = "closed"
	VotingStatusDeleted = "deleted"
)

// Roles stored on the user profile.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a profile document in the users collection. The document id equals
// the identity-provider uid for profiles created through registration; legacy
// profiles may live under a generated id, which is why lookups fall back to a
// uid equality query.
type User struct {
	ID        string    `firestore:"-" json:"id,omitempty"`
	UID       string    `firestore:"uid" json:"uid"`
	Username  string    `firestore:"username" json:"username"`
	Email     string    `firestore:"email" json:"email"`
	Name      string    `firestore:"name" json:"name,omitempty"`
	Role      string    `firestore:"role" json:"role"`
	Status    string    `firestore:"status" json:"status"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Voting is a poll document in the votings collection.
type Voting struct {
	ID          string    `firestore:"-" json:"id,omitempty"`
	AuthorID    string    `firestore:"author_id" json:"author_id"`
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description" json:"description"`
	Tag         string    `firestore:"tag" json:"tag"`
	Status      string    `firestore:"status" json:"status"`
	ResultText  string    `firestore:"result_text,omitempty" json:"result_text,omitempty"`
	CreatedAt   time.Time `firestore:"created_at" json:"created_at"`
}

// Vote links a user to a voting. The store enforces no uniqueness over
// (voting_id, user_id); the toggle logic in the vote service treats the pair
// as unique and removes the first match on un-vote.
type Vote struct {
	ID       string    `firestore:"-" json:"id,omitempty"`
	VotingID string    `firestore:"voting_id" json:"voting_id"`
	UserID   string    `firestore:"user_id" json:"user_id"`
	VotedAt  time.Time `firestore:"voted_at" json:"voted_at"`
}

// UserBan is an append-only record of a ban. Access gating is done by the
// status flip on the User document, not by this record.
type UserBan struct {
	ID       string    `firestore:"-" json:"id,omitempty"`
	UserID   string    `firestore:"user_id" json:"user_id"`
	Reason   string    `firestore:"reason" json:"reason"`
	BannedAt time.Time `firestore:"banned_at" json:"banned_at"`
	BannedTo time.Time `firestore:"banned_to,omitempty" json:"banned_to,omitempty"`
}

// TokenInfo is the decoded identity-provider token.
type TokenInfo struct {
	UID   string
	Email string
	Name  string
}

// Principal is the authenticated identity threaded explicitly through service
// calls. Role comes from the profile document and defaults to RoleUser when
// no profile exists yet.
type Principal struct {
	UID   string
	Email string
	Name  string
	Role  string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
