package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/crave-wave/cravewave/internal/config"
	"github.com/crave-wave/cravewave/internal/models"
	"github.com/crave-wave/cravewave/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T, name string) *UserAuthService {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_service_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret"
	cfg.UserJWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 8, RequireLetter: true, RequireNumber: true}
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterEnforcesPasswordPolicy(t *testing.T) {
	svc := setupAuthServiceTest(t, "policy")

	weak := []string{"short1a", "onlyletters", "12345678"}
	for _, password := range weak {
		_, err := svc.Register(RegisterInput{Email: "a@example.com", Password: password})
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q should be rejected, got %v", password, err)
		}
	}

	user, err := svc.Register(RegisterInput{Email: "A@Example.com ", Password: "goodpass1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "a@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "goodpass1" || user.PasswordHash == "" {
		t.Fatalf("password stored unhashed")
	}

	if _, err := svc.Register(RegisterInput{Email: "a@example.com", Password: "goodpass1"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email should be rejected, got %v", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := setupAuthServiceTest(t, "login")

	if _, err := svc.Register(RegisterInput{Email: "b@example.com", Password: "goodpass1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := svc.Login("b@example.com", "wrongpass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password should be rejected, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "goodpass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email should be rejected, got %v", err)
	}

	user, token, expiresAt, err := svc.Login("b@example.com", "goodpass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("token or expiry invalid")
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims do not match user: %+v", claims)
	}
	if user.LastLoginAt == nil {
		t.Fatalf("last login not recorded")
	}
}

func TestLogoutBumpsTokenVersion(t *testing.T) {
	svc := setupAuthServiceTest(t, "logout")

	if _, err := svc.Register(RegisterInput{Email: "c@example.com", Password: "goodpass1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	user, token, _, err := svc.Login("c@example.com", "goodpass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}

	if err := svc.Logout(user.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	reloaded, err := svc.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.TokenVersion != claims.TokenVersion+1 {
		t.Fatalf("token version not bumped: %d -> %d", claims.TokenVersion, reloaded.TokenVersion)
	}
}
