package usecase

import (
	"context"
	"testing"

	"wheeloop/internal/dto/request"
	"wheeloop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestCreateUserAdminRole(t *testing.T) {
	repos := newTestRepos()
	svc := NewUserService(repos.repo, zap.NewNop())

	user, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
		Name:     "Admin One",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.Role != "admin" {
		t.Errorf("role = %s, want admin", user.Role)
	}
}

func TestCreateUserBadRole(t *testing.T) {
	repos := newTestRepos()
	svc := NewUserService(repos.repo, zap.NewNop())

	_, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
		Name:     "Someone",
		Email:    "someone@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown role")
	}
}

func TestUpdateUserKeepsPasswordWhenNotSupplied(t *testing.T) {
	repos := newTestRepos()
	svc := NewUserService(repos.repo, zap.NewNop())
	user := seedUser(repos, "alice")
	originalHash := user.PasswordHash

	newName := "Alice Updated"
	if _, err := svc.UpdateUser(context.Background(), user.ID.String(), &request.UpdateUserRequest{
		Name: &newName,
	}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if repos.users.users[user.ID].PasswordHash != originalHash {
		t.Error("password hash changed without a new password")
	}
	if repos.users.users[user.ID].Name != "Alice Updated" {
		t.Errorf("name = %q", repos.users.users[user.ID].Name)
	}
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	repos := newTestRepos()
	svc := NewUserService(repos.repo, zap.NewNop())
	user := seedUser(repos, "alice")

	newPassword := "brand-new-pass"
	if _, err := svc.UpdateUser(context.Background(), user.ID.String(), &request.UpdateUserRequest{
		Password: &newPassword,
	}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	hash := repos.users.users[user.ID].PasswordHash
	if hash == newPassword {
		t.Fatal("password stored in plaintext")
	}
	if !utils.CheckPasswordHash(newPassword, hash) {
		t.Error("stored hash does not verify against the new password")
	}
}

func TestUpdateUserPasswordChangeRevokesSessions(t *testing.T) {
	repos := newTestRepos()
	authSvc := NewAuthService(repos.repo, testConfig(), zap.NewNop())
	userSvc := NewUserService(repos.repo, zap.NewNop())

	registered, err := authSvc.Register(context.Background(), registerReq())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	newPassword := "rotated-pass"
	if _, err := userSvc.UpdateUser(context.Background(), registered.UserID, &request.UpdateUserRequest{
		Password: &newPassword,
	}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if len(repos.sessions.revoked) != 1 || repos.sessions.revoked[0] != registered.Token {
		t.Errorf("open session %s was not revoked on password change", registered.Token)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	repos := newTestRepos()
	svc := NewUserService(repos.repo, zap.NewNop())

	name := "Ghost"
	_, err := svc.UpdateUser(context.Background(), uuid.NewString(), &request.UpdateUserRequest{
		Name: &name,
	})
	if err == nil {
		t.Fatal("expected not found error")
	}
}

func TestDeleteUser(t *testing.T) {
	repos := newTestRepos()
	svc := NewUserService(repos.repo, zap.NewNop())
	user := seedUser(repos, "alice")

	if err := svc.DeleteUser(context.Background(), user.ID.String()); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if len(repos.users.deleted) != 1 || repos.users.deleted[0] != user.ID {
		t.Errorf("delete was not issued for %s", user.ID)
	}
}
