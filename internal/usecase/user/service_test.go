package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/usecase/user"
)

var testSecret = []byte("test-secret")

type memUserRepo struct {
	domain.UserRepository
	byEmail map[string]domain.User
	byID    map[int64]domain.User
	nextID  int64
	updated *domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byEmail: make(map[string]domain.User),
		byID:    make(map[int64]domain.User),
		nextID:  1,
	}
}

func (r *memUserRepo) Insert(_ context.Context, u *domain.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrConflict
	}
	u.ID = r.nextID
	r.nextID++
	r.byEmail[u.Email] = *u
	r.byID[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) Update(_ context.Context, u *domain.User) error {
	r.updated = u
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = *u
	return nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := user.NewService(repo, testSecret, time.Hour)

	email := faker.Email()
	require.NoError(t, svc.Register(context.Background(), email, "jakdukfan", "correct-horse"))

	stored := repo.byEmail[email]
	assert.NotEqual(t, "correct-horse", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct-horse")))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := user.NewService(newMemUserRepo(), testSecret, time.Hour)

	err := svc.Register(context.Background(), faker.Email(), "jakdukfan", "short")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := user.NewService(repo, testSecret, time.Hour)
	email := faker.Email()

	require.NoError(t, svc.Register(context.Background(), email, "first", "correct-horse"))
	err := svc.Register(context.Background(), email, "second", "correct-horse")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := user.NewService(repo, testSecret, time.Hour)
	email := faker.Email()
	require.NoError(t, svc.Register(context.Background(), email, "jakdukfan", "correct-horse"))

	tokenString, err := svc.Login(context.Background(), email, "correct-horse")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(repo.byEmail[email].ID), claims["user_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := user.NewService(repo, testSecret, time.Hour)
	email := faker.Email()
	require.NoError(t, svc.Register(context.Background(), email, "jakdukfan", "correct-horse"))

	_, err := svc.Login(context.Background(), email, "wrong-horse")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := user.NewService(newMemUserRepo(), testSecret, time.Hour)

	_, err := svc.Login(context.Background(), "nobody@jakduk.dev", "correct-horse")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := user.NewService(repo, testSecret, time.Hour)
	email := faker.Email()
	require.NoError(t, svc.Register(context.Background(), email, "jakdukfan", "correct-horse"))
	id := repo.byEmail[email].ID

	t.Run("wrong old password", func(t *testing.T) {
		err := svc.EditPassword(context.Background(), id, "wrong-horse", "new-password")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, svc.EditPassword(context.Background(), id, "correct-horse", "new-password"))
		require.NotNil(t, repo.updated)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updated.Password), []byte("new-password")))
	})
}
