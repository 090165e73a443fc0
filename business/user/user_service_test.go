package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"myMediasStore/domain"
	"myMediasStore/internal/repository/redis"
	"myMediasStore/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
	byID    map[uint]domain.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]domain.User),
		byID:    make(map[uint]domain.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = *user
	f.byID[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

type fakeTokenRepo struct {
	stored map[string]redis.TokenData
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{stored: make(map[string]redis.TokenData)}
}

func (f *fakeTokenRepo) StoreToken(_ context.Context, userID string, data redis.TokenData, _ time.Duration) error {
	f.stored[userID] = data
	return nil
}

func (f *fakeTokenRepo) DeleteToken(_ context.Context, userID, _ string) error {
	delete(f.stored, userID)
	return nil
}

func newTestUserService(repo *fakeUserRepo, tokens *fakeTokenRepo) *userService {
	return NewUserService(repo, tokens, validator.New())
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := newTestUserService(newFakeUserRepo(), newFakeTokenRepo())

	user, err := svc.Register(context.Background(), &domain.User{
		FullName: "María Quispe",
		Email:    "maria@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.Role != RoleCustomer {
		t.Errorf("new user role = %q, want %q", user.Role, RoleCustomer)
	}
	if user.Password != "" {
		t.Error("password hash leaked in register response")
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := newTestUserService(newFakeUserRepo(), newFakeTokenRepo())

	if _, err := svc.Register(context.Background(), &domain.User{
		Email:    "not-an-email",
		Password: "secret123",
	}); err == nil {
		t.Error("expected error for invalid email")
	}

	if _, err := svc.Register(context.Background(), &domain.User{
		Email:    "maria@example.com",
		Password: "short",
	}); err == nil {
		t.Error("expected error for short password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, newFakeTokenRepo())

	first := domain.User{Email: "maria@example.com", Password: "secret123"}
	if _, err := svc.Register(context.Background(), &first); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	second := domain.User{Email: "maria@example.com", Password: "secret456"}
	if _, err := svc.Register(context.Background(), &second); err == nil || err.Error() != "email already exists" {
		t.Fatalf("got err %v, want email already exists", err)
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := newTestUserService(repo, tokens)

	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	seeded := domain.User{Email: "maria@example.com", Password: hash, Role: RoleCustomer}
	if err := repo.Create(context.Background(), &seeded); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "maria@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Error("login returned empty token")
	}
	if user.Password != "" {
		t.Error("password hash leaked in login response")
	}
	if len(tokens.stored) != 1 {
		t.Errorf("stored %d tokens, want 1", len(tokens.stored))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := newTestUserService(repo, newFakeTokenRepo())

	hash, _ := utils.HashPassword("secret123")
	seeded := domain.User{Email: "maria@example.com", Password: hash}
	if err := repo.Create(context.Background(), &seeded); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "maria@example.com", "wrong"); err == nil {
		t.Fatal("expected error for wrong password")
	}
}

func TestGetUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, newFakeTokenRepo())

	admin := domain.User{Email: "admin@example.com", Password: "x", Role: RoleAdmin}
	if err := repo.Create(context.Background(), &admin); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	role, err := svc.GetUserRole(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("GetUserRole failed: %v", err)
	}
	if role != RoleAdmin {
		t.Errorf("got role %q, want %q", role, RoleAdmin)
	}

	// unknown users resolve to no role, not an error
	role, err = svc.GetUserRole(context.Background(), 999)
	if err != nil {
		t.Fatalf("unknown user returned error: %v", err)
	}
	if role != "" {
		t.Errorf("unknown user resolved to role %q", role)
	}
}
