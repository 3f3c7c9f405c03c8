package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"voting-server/internal/domain"
	"voting-server/internal/repository"
)

// In-memory fakes for the repository interfaces. They mimic the document
// store's behavior closely enough for the service logic under test: equality
// queries return the first match in insertion order, the active listing is
// ordered by created_at descending.

type fakeIdentityProvider struct {
	mu          sync.Mutex
	nextUID     int
	createCalls int
	tokens      map[string]*domain.TokenInfo // idToken -> decoded info
	customErr   error
	deleted     []string
}

var _ repository.IdentityProvider = (*fakeIdentityProvider)(nil)

func newFakeIdentityProvider() *fakeIdentityProvider {
	return &fakeIdentityProvider{tokens: make(map[string]*domain.TokenInfo)}
}

func (p *fakeIdentityProvider) VerifyIDToken(_ context.Context, idToken string) (*domain.TokenInfo, error) {
	info, ok := p.tokens[idToken]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return info, nil
}

func (p *fakeIdentityProvider) CreateUser(_ context.Context, _, _, _ string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createCalls++
	p.nextUID++
	return fmt.Sprintf("uid-%d", p.nextUID), nil
}

func (p *fakeIdentityProvider) DeleteUser(_ context.Context, uid string) error {
	p.deleted = append(p.deleted, uid)
	return nil
}

func (p *fakeIdentityProvider) CreateCustomToken(_ context.Context, uid string) (string, error) {
	if p.customErr != nil {
		return "", p.customErr
	}
	return "custom-token-" + uid, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	order []string
	users map[string]*domain.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	clone.ID = id
	return &clone, nil
}

func (r *fakeUserRepo) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	return r.firstMatch(func(u *domain.User) bool { return u.UID == uid })
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.firstMatch(func(u *domain.User) bool { return u.Username == username })
}

func (r *fakeUserRepo) firstMatch(match func(*domain.User) bool) (*domain.User, error) {
	for _, id := range r.order {
		if u := r.users[id]; match(u) {
			clone := *u
			clone.ID = id
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) CreateWithID(_ context.Context, id string, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users[id] = &clone
	r.order = append(r.order, id)
	return nil
}

func (r *fakeUserRepo) Add(ctx context.Context, user *domain.User) (string, error) {
	r.seq++
	id := fmt.Sprintf("doc-%d", r.seq)
	if err := r.CreateWithID(ctx, id, user); err != nil {
		return "", err
	}
	return id, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.users[id]
		clone.ID = id
		users = append(users, clone)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	for path, value := range fields {
		switch path {
		case "username":
			user.Username = value.(string)
		case "email":
			user.Email = value.(string)
		case "name":
			user.Name = value.(string)
		case "status":
			user.Status = value.(string)
		}
	}
	return nil
}

func (r *fakeUserRepo) SetStatus(ctx context.Context, id, status string) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeVotingRepo struct {
	mu      sync.Mutex
	seq     int
	order   []string
	votings map[string]*domain.Voting
}

var _ repository.VotingRepository = (*fakeVotingRepo)(nil)

func newFakeVotingRepo() *fakeVotingRepo {
	return &fakeVotingRepo{votings: make(map[string]*domain.Voting)}
}

func (r *fakeVotingRepo) Add(_ context.Context, voting *domain.Voting) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("voting-%d", r.seq)
	clone := *voting
	r.votings[id] = &clone
	r.order = append(r.order, id)
	return id, nil
}

func (r *fakeVotingRepo) GetByID(_ context.Context, id string) (*domain.Voting, error) {
	voting, ok := r.votings[id]
	if !ok {
		return nil, domain.ErrVotingNotFound
	}
	clone := *voting
	clone.ID = id
	return &clone, nil
}

func (r *fakeVotingRepo) ListActive(_ context.Context) ([]domain.Voting, error) {
	var active []domain.Voting
	for _, id := range r.order {
		if v := r.votings[id]; v.Status == domain.VotingStatusActive {
			clone := *v
			clone.ID = id
			active = append(active, clone)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active, nil
}

func (r *fakeVotingRepo) ListAll(_ context.Context) ([]domain.Voting, error) {
	all := make([]domain.Voting, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.votings[id]
		clone.ID = id
		all = append(all, clone)
	}
	return all, nil
}

func (r *fakeVotingRepo) ListByAuthor(_ context.Context, authorID string) ([]domain.Voting, error) {
	var byAuthor []domain.Voting
	for _, id := range r.order {
		if v := r.votings[id]; v.AuthorID == authorID {
			clone := *v
			clone.ID = id
			byAuthor = append(byAuthor, clone)
		}
	}
	return byAuthor, nil
}

func (r *fakeVotingRepo) SetStatus(_ context.Context, id, status string) error {
	voting, ok := r.votings[id]
	if !ok {
		return domain.ErrVotingNotFound
	}
	voting.Status = status
	return nil
}

func (r *fakeVotingRepo) Close(_ context.Context, id, resultText string) error {
	voting, ok := r.votings[id]
	if !ok {
		return domain.ErrVotingNotFound
	}
	voting.Status = domain.VotingStatusClosed
	voting.ResultText = resultText
	return nil
}

type fakeVoteRepo struct {
	mu    sync.Mutex
	seq   int
	order []string
	votes map[string]*domain.Vote
}

var _ repository.VoteRepository = (*fakeVoteRepo)(nil)

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]*domain.Vote)}
}

func (r *fakeVoteRepo) Add(_ context.Context, vote *domain.Vote) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("vote-%d", r.seq)
	clone := *vote
	r.votes[id] = &clone
	r.order = append(r.order, id)
	return id, nil
}

func (r *fakeVoteRepo) FindByVotingAndUser(_ context.Context, votingID, userID string) (*domain.Vote, error) {
	for _, id := range r.order {
		if v := r.votes[id]; v.VotingID == votingID && v.UserID == userID {
			clone := *v
			clone.ID = id
			return &clone, nil
		}
	}
	return nil, domain.ErrVoteNotFound
}

func (r *fakeVoteRepo) Delete(_ context.Context, id string) error {
	delete(r.votes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeVoteRepo) ListByVoting(_ context.Context, votingID string) ([]domain.Vote, error) {
	return r.filter(func(v *domain.Vote) bool { return v.VotingID == votingID }), nil
}

func (r *fakeVoteRepo) ListByUser(_ context.Context, userID string) ([]domain.Vote, error) {
	return r.filter(func(v *domain.Vote) bool { return v.UserID == userID }), nil
}

func (r *fakeVoteRepo) ListAll(_ context.Context) ([]domain.Vote, error) {
	return r.filter(func(*domain.Vote) bool { return true }), nil
}

func (r *fakeVoteRepo) filter(match func(*domain.Vote) bool) []domain.Vote {
	votes := make([]domain.Vote, 0, len(r.order))
	for _, id := range r.order {
		if v := r.votes[id]; match(v) {
			clone := *v
			clone.ID = id
			votes = append(votes, clone)
		}
	}
	return votes
}

type fakeBanRepo struct {
	mu   sync.Mutex
	bans []domain.UserBan
}

var _ repository.BanRepository = (*fakeBanRepo)(nil)

func (r *fakeBanRepo) Add(_ context.Context, ban *domain.UserBan) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bans = append(r.bans, *ban)
	return fmt.Sprintf("ban-%d", len(r.bans)), nil
}
