package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/service/user"
	"github.com/betshield/betshield-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users    map[uuid.UUID]*entity.User
	settings map[uuid.UUID]*entity.UserSettings
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[uuid.UUID]*entity.User{},
		settings: map[uuid.UUID]*entity.UserSettings{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = uuid.Must(uuid.NewV4())
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, req entity.UpdateProfileRequest) (*entity.User, error) {
	u := f.users[id]
	if u == nil {
		return nil, nil
	}
	if req.Name != nil {
		u.Name = req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	return u, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hashed string) error {
	if u := f.users[id]; u != nil {
		u.Password = hashed
	}
	return nil
}

func (f *fakeUserRepo) GetSettings(_ context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	return f.settings[userID], nil
}

func (f *fakeUserRepo) SaveSettings(_ context.Context, s *entity.UserSettings) error {
	copied := *s
	f.settings[s.UserID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	delete(f.settings, id)
	return nil
}

func newVerifyRouter(t *testing.T) (*gin.Engine, *fakeUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeUserRepo()
	h := NewAuthHandler(user.NewUserService(repo))

	r := gin.New()
	api := r.Group("/api")
	h.RegisterRoutes(api)
	return r, repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, email string) (*entity.User, string) {
	t.Helper()

	u := &entity.User{Email: email, Role: entity.RoleUser}
	require.NoError(t, repo.Create(context.Background(), u))

	token, err := utils.GenerateToken(u.ID, u.Role)
	require.NoError(t, err)
	return u, token
}

func TestVerify_ValidTokenReturnsUser(t *testing.T) {
	r, repo := newVerifyRouter(t)
	u, token := seedUser(t, repo, "player@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, u.ID.String(), data["id"])
	assert.Equal(t, "player@example.com", data["email"])
	assert.Equal(t, entity.RoleUser, data["role"])
}

func TestVerify_MissingTokenIs401(t *testing.T) {
	r, _ := newVerifyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestVerify_GarbageTokenIs401(t *testing.T) {
	r, _ := newVerifyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestVerify_DeletedAccountIs401(t *testing.T) {
	r, repo := newVerifyRouter(t)
	u, token := seedUser(t, repo, "gone@example.com")
	require.NoError(t, repo.Delete(context.Background(), u.ID))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
