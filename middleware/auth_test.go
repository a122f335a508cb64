package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dosada05/flag-league/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func intPtr(v int) *int { return &v }

func serveWithToken(t *testing.T, token string, h http.Handler) (*httptest.ResponseRecorder, Actor) {
	t.Helper()
	var actor Actor
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		actor, err = ActorFromContext(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	})
	if h == nil {
		h = Authenticate(secret)(inner)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, actor
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	user := &models.User{ID: 9, Role: models.RoleTeam, TeamID: intPtr(4)}
	token, err := IssueToken(secret, user, time.Hour, time.Now())
	require.NoError(t, err)

	rec, actor := serveWithToken(t, token, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, Actor{UserID: 9, Role: models.RoleTeam, TeamID: intPtr(4)}, actor)
}

func TestAuthenticate_Rejects(t *testing.T) {
	user := &models.User{ID: 9, Role: models.RoleAdmin}
	expired, err := IssueToken(secret, user, time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, err := IssueToken([]byte("other"), user, time.Hour, time.Now())
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1, "role": "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not-a-jwt"},
		{"expired", expired},
		{"wrong secret", foreign},
		{"alg none", none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := serveWithToken(t, tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthorize(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	chain := Authenticate(secret)(Authorize(models.RoleAdmin)(ok))

	admin, _ := IssueToken(secret, &models.User{ID: 1, Role: models.RoleAdmin}, time.Hour, time.Now())
	team, _ := IssueToken(secret, &models.User{ID: 2, Role: models.RoleTeam, TeamID: intPtr(3)}, time.Hour, time.Now())

	rec, _ := serveWithToken(t, admin, chain)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = serveWithToken(t, team, chain)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestActorCapabilities(t *testing.T) {
	match := &models.Match{ID: 1, Team1ID: 1, Team2ID: 2, RefereeID: 3}

	tests := []struct {
		name         string
		actor        Actor
		officiate    bool
		administer   bool
		useScorecard bool
	}{
		{"referee team", Actor{Role: models.RoleTeam, TeamID: intPtr(3)}, true, false, true},
		{"playing team", Actor{Role: models.RoleTeam, TeamID: intPtr(1)}, false, false, true},
		{"team account without team", Actor{Role: models.RoleTeam}, false, false, false},
		{"staff", Actor{Role: models.RoleAdmin, TeamID: intPtr(3)}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.officiate, tt.actor.CanOfficiate(match))
			assert.Equal(t, tt.administer, tt.actor.CanAdminister())
			assert.Equal(t, tt.useScorecard, tt.actor.CanUseScorecard())
		})
	}
}
