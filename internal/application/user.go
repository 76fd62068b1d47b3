package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/consite-dev/consite-go/internal/api/middleware"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/internal/repository"
	"github.com/consite-dev/consite-go/pkg/googleauth"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidGoogleToken  = errors.New("invalid google token")
	ErrUserNotFound        = errors.New("user not found")
	ErrWorkerNotFound      = errors.New("worker not found")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos  *repository.Repos
	cfg    *config.Config
	jwt    *middleware.JWT
	google googleauth.Verifier
}

func NewUserService(repos *repository.Repos, cfg *config.Config, jwt *middleware.JWT, google googleauth.Verifier) *UserService {
	return &UserService{Repos: repos, cfg: cfg, jwt: jwt, google: google}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) emailTaken(email string) (bool, error) {
	_, err := s.Repos.User.GetUserByEmail(email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// Signup registers a public account. Requested roles outside the public
// allow-list silently fall back to worker.
func (s *UserService) Signup(input user.SignupInput) (user.User, string, error) {
	role := string(user.RoleWorker)
	for _, allowed := range config.PublicSignupRoles {
		if input.Role == allowed {
			role = input.Role
			break
		}
	}

	email := normalizeEmail(input.Email)
	taken, err := s.emailTaken(email)
	if err != nil {
		return user.User{}, "", err
	}
	if taken {
		return user.User{}, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrPasswordHashFailure
	}

	password := string(hashed)
	usr := user.User{
		Name:     input.Name,
		Email:    email,
		Password: &password,
		Role:     role,
		Phone:    input.Phone,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, "", err
	}

	token, err := s.jwt.GenerateToken(usr.ID, usr.Role)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

// AdminRegister creates an account with any role, admin included. No token is
// issued; the admin stays logged in as themselves.
func (s *UserService) AdminRegister(input user.RegisterInput) (user.User, error) {
	role := input.Role
	if role == "" {
		role = string(user.RoleWorker)
	}

	email := normalizeEmail(input.Email)
	taken, err := s.emailTaken(email)
	if err != nil {
		return user.User{}, err
	}
	if taken {
		return user.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	password := string(hashed)
	usr := user.User{
		Name:     input.Name,
		Email:    email,
		Password: &password,
		Role:     role,
		Phone:    input.Phone,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// Login verifies credentials. Unknown email and wrong password share the same
// error so the response never reveals which one failed.
func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if usr.Password == nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	now := time.Now()
	usr.LastLogin = &now
	_ = s.Repos.User.SaveUser(&usr)

	token, err := s.jwt.GenerateToken(usr.ID, usr.Role)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

// GoogleLogin verifies a Google ID token, then finds the matching account by
// email or google id, linking the google id to a local account on first use.
// Unknown identities get a fresh worker account.
func (s *UserService) GoogleLogin(ctx context.Context, idToken string) (user.User, string, error) {
	payload, err := s.google.Verify(ctx, idToken)
	if err != nil {
		if errors.Is(err, googleauth.ErrNotConfigured) {
			return user.User{}, "", err
		}
		return user.User{}, "", ErrInvalidGoogleToken
	}

	email := normalizeEmail(payload.Email)
	usr, err := s.Repos.User.GetUserByEmailOrGoogleID(email, payload.GoogleID)
	switch {
	case err == nil:
		if usr.GoogleID == nil {
			googleID := payload.GoogleID
			usr.GoogleID = &googleID
			if usr.Name == "" && payload.Name != "" {
				usr.Name = payload.Name
			}
			if err := s.Repos.User.SaveUser(&usr); err != nil {
				return user.User{}, "", err
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		googleID := payload.GoogleID
		usr = user.User{
			Name:     payload.Name,
			Email:    email,
			GoogleID: &googleID,
			Role:     string(user.RoleWorker),
		}
		if err := s.Repos.User.SaveUser(&usr); err != nil {
			return user.User{}, "", err
		}
	default:
		return user.User{}, "", err
	}

	now := time.Now()
	usr.LastLogin = &now
	_ = s.Repos.User.SaveUser(&usr)

	token, err := s.jwt.GenerateToken(usr.ID, usr.Role)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

// AddWorker lets supervising roles onboard a worker account directly. A missing
// password falls back to the configured default.
func (s *UserService) AddWorker(input user.AddWorkerInput) (user.User, error) {
	email := normalizeEmail(input.Email)
	taken, err := s.emailTaken(email)
	if err != nil {
		return user.User{}, err
	}
	if taken {
		return user.User{}, ErrEmailTaken
	}

	rawPassword := input.Password
	if rawPassword == "" {
		rawPassword = s.cfg.DefaultWorkerPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	password := string(hashed)
	worker := user.User{
		Name:      input.Name,
		Email:     email,
		Password:  &password,
		Role:      string(user.RoleWorker),
		Phone:     input.Phone,
		DailyWage: input.DailyWage,
	}
	if err := s.Repos.User.SaveUser(&worker); err != nil {
		return user.User{}, err
	}
	return worker, nil
}

func (s *UserService) ListUsers(q user.ListUsersQuery) ([]user.User, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	return s.Repos.User.ListUsers(q)
}
