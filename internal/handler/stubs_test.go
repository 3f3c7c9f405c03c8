package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"voting-server/internal/domain"
	"voting-server/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Function-field stubs for the service interfaces. Unset fields return zero
// values; tests set only what the route under test touches.

type stubAuthService struct {
	registerFn  func(service.RegisterInput) (string, *domain.User, error)
	loginFn     func(string) (*domain.User, error)
	usernameFn  func(string) (string, *domain.User, error)
	customFn    func(string) (*domain.User, error)
	verifyFn    func(string) (*domain.User, error)
	testTokenFn func(string) (string, error)
	deleteFn    func(string) error
	resolveFn   func(string) (domain.Principal, error)
}

var _ service.AuthService = (*stubAuthService)(nil)

func (s *stubAuthService) Register(_ context.Context, in service.RegisterInput) (string, *domain.User, error) {
	if s.registerFn == nil {
		return "", nil, nil
	}
	return s.registerFn(in)
}

func (s *stubAuthService) Login(_ context.Context, idToken string) (*domain.User, error) {
	if s.loginFn == nil {
		return nil, nil
	}
	return s.loginFn(idToken)
}

func (s *stubAuthService) LoginByUsername(_ context.Context, username string) (string, *domain.User, error) {
	if s.usernameFn == nil {
		return "", nil, nil
	}
	return s.usernameFn(username)
}

func (s *stubAuthService) LoginWithCustomToken(_ context.Context, customToken string) (*domain.User, error) {
	if s.customFn == nil {
		return nil, nil
	}
	return s.customFn(customToken)
}

func (s *stubAuthService) VerifyToken(_ context.Context, idToken string) (*domain.User, error) {
	if s.verifyFn == nil {
		return nil, nil
	}
	return s.verifyFn(idToken)
}

func (s *stubAuthService) CreateTestToken(_ context.Context, uid string) (string, error) {
	if s.testTokenFn == nil {
		return "", nil
	}
	return s.testTokenFn(uid)
}

func (s *stubAuthService) DeleteAccount(_ context.Context, uid string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(uid)
}

func (s *stubAuthService) ResolvePrincipal(_ context.Context, idToken string) (domain.Principal, error) {
	if s.resolveFn == nil {
		return domain.Principal{}, domain.ErrTokenInvalid
	}
	return s.resolveFn(idToken)
}

type stubVoteService struct {
	toggleFn func(domain.Principal, string) (*service.ToggleResult, error)
	votes    []domain.Vote
	listErr  error
}

var _ service.VoteService = (*stubVoteService)(nil)

func (s *stubVoteService) Toggle(_ context.Context, p domain.Principal, votingID string) (*service.ToggleResult, error) {
	return s.toggleFn(p, votingID)
}

func (s *stubVoteService) ListByVoting(context.Context, string) ([]domain.Vote, error) {
	return s.votes, s.listErr
}

func (s *stubVoteService) ListByUser(context.Context, string) ([]domain.Vote, error) {
	return s.votes, s.listErr
}

func (s *stubVoteService) ListAll(context.Context, domain.Principal) ([]domain.Vote, error) {
	return s.votes, s.listErr
}

// resolveAs returns a resolver that accepts exactly one token.
func resolveAs(token string, p domain.Principal) func(string) (domain.Principal, error) {
	return func(idToken string) (domain.Principal, error) {
		if idToken != token {
			return domain.Principal{}, domain.ErrTokenInvalid
		}
		return p, nil
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
