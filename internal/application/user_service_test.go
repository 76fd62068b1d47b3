package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/consite-dev/consite-go/internal/api/middleware"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/internal/repository"
	"github.com/consite-dev/consite-go/internal/repository/mock"
	"github.com/consite-dev/consite-go/pkg/googleauth"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubVerifier struct {
	payload *googleauth.Payload
	err     error
}

func (v *stubVerifier) Verify(ctx context.Context, token string) (*googleauth.Payload, error) {
	return v.payload, v.err
}

func testConfig() *config.Config {
	return &config.Config{
		JwtSecret:             "test-secret",
		Issuer:                "consite",
		TokenTTL:              time.Hour,
		DefaultWorkerPassword: "worker123",
	}
}

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T, google googleauth.Verifier) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	cfg := testConfig()
	svc := NewUserService(repos, cfg, middleware.NewJWT(cfg), google)
	return svc, mockUser
}

// --------------------- Signup ---------------------
func TestSignup_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t, nil)

	mockUser.EXPECT().GetUserByEmail("alice@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 1
		return nil
	})

	usr, token, err := svc.Signup(user.SignupInput{
		Name:     "Alice",
		Email:    "Alice@Test.com",
		Password: "123456",
		Role:     "contractor",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice@test.com", usr.Email)
	assert.Equal(t, "contractor", usr.Role)
	assert.NotEmpty(t, token)
}

func TestSignup_RoleFallsBackToWorker(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t, nil)

	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	usr, _, err := svc.Signup(user.SignupInput{
		Name:     "Bob",
		Email:    "bob@test.com",
		Password: "123456",
		Role:     "admin",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(user.RoleWorker), usr.Role)
}

func TestSignup_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t, nil)

	mockUser.EXPECT().GetUserByEmail("taken@test.com").Return(user.User{ID: 2}, nil)

	_, _, err := svc.Signup(user.SignupInput{
		Name:     "Eve",
		Email:    "taken@test.com",
		Password: "123456",
	})
	assert.Equal(t, ErrEmailTaken, err)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	password := string(hashed)
	usr := user.User{ID: 1, Email: "bob@test.com", Password: &password, Role: "worker"}

	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(usr, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	got, token, err := svc.Login("bob@test.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, usr.ID, got.ID)
	assert.NotEmpty(t, token)
	assert.NotNil(t, got.LastLogin)
}

func TestLogin_UnknownEmailAndWrongPasswordShareOneError(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t, nil)

	mockUser.EXPECT().GetUserByEmail("ghost@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	_, _, errUnknown := svc.Login("ghost@test.com", "123456")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	password := string(hashed)
	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(user.User{ID: 1, Password: &password}, nil)
	_, _, errWrong := svc.Login("bob@test.com", "incorrect")

	assert.Equal(t, ErrInvalidCredentials, errUnknown)
	assert.Equal(t, ErrInvalidCredentials, errWrong)
}

func TestLogin_GoogleOnlyAccountHasNoPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t, nil)

	mockUser.EXPECT().GetUserByEmail("google@test.com").Return(user.User{ID: 3}, nil)

	_, _, err := svc.Login("google@test.com", "anything")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- GoogleLogin ---------------------
func TestGoogleLogin_LinksExistingAccount(t *testing.T) {
	google := &stubVerifier{payload: &googleauth.Payload{
		GoogleID: "goog-123",
		Email:    "alice@test.com",
		Name:     "Alice",
	}}
	svc, mockUser := setupUserServiceMocks(t, google)

	existing := user.User{ID: 1, Email: "alice@test.com", Role: "engineer"}
	mockUser.EXPECT().GetUserByEmailOrGoogleID("alice@test.com", "goog-123").Return(existing, nil)
	// First save links the google id, second records the login time.
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NotNil(t, u.GoogleID)
		assert.Equal(t, "goog-123", *u.GoogleID)
		return nil
	})
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	usr, token, err := svc.GoogleLogin(context.Background(), "id-token")
	assert.NoError(t, err)
	assert.Equal(t, "engineer", usr.Role)
	assert.NotEmpty(t, token)
}

func TestGoogleLogin_CreatesWorkerForUnknownIdentity(t *testing.T) {
	google := &stubVerifier{payload: &googleauth.Payload{
		GoogleID: "goog-456",
		Email:    "new@test.com",
		Name:     "Newcomer",
	}}
	svc, mockUser := setupUserServiceMocks(t, google)

	mockUser.EXPECT().GetUserByEmailOrGoogleID("new@test.com", "goog-456").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 9
		return nil
	})
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	usr, _, err := svc.GoogleLogin(context.Background(), "id-token")
	assert.NoError(t, err)
	assert.Equal(t, string(user.RoleWorker), usr.Role)
	assert.Nil(t, usr.Password)
}

func TestGoogleLogin_BadToken(t *testing.T) {
	google := &stubVerifier{err: errors.New("token expired")}
	svc, _ := setupUserServiceMocks(t, google)

	_, _, err := svc.GoogleLogin(context.Background(), "garbage")
	assert.Equal(t, ErrInvalidGoogleToken, err)
}

func TestGoogleLogin_NotConfigured(t *testing.T) {
	google := &stubVerifier{err: googleauth.ErrNotConfigured}
	svc, _ := setupUserServiceMocks(t, google)

	_, _, err := svc.GoogleLogin(context.Background(), "id-token")
	assert.ErrorIs(t, err, googleauth.ErrNotConfigured)
}

// --------------------- AddWorker ---------------------
func TestAddWorker_DefaultsPasswordAndRole(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t, nil)

	mockUser.EXPECT().GetUserByEmail("worker@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, string(user.RoleWorker), u.Role)
		assert.NotNil(t, u.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte("worker123")))
		return nil
	})

	worker, err := svc.AddWorker(user.AddWorkerInput{
		Name:      "Wanda",
		Email:     "worker@test.com",
		Phone:     "555-0100",
		DailyWage: 120,
	})
	assert.NoError(t, err)
	assert.Equal(t, 120.0, worker.DailyWage)
}

func TestAddWorker_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t, nil)

	mockUser.EXPECT().GetUserByEmail("worker@test.com").Return(user.User{ID: 5}, nil)

	_, err := svc.AddWorker(user.AddWorkerInput{
		Name:      "Wanda",
		Email:     "worker@test.com",
		DailyWage: 120,
	})
	assert.Equal(t, ErrEmailTaken, err)
}

// --------------------- ListUsers ---------------------
func TestListUsers_DefaultsPaging(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t, nil)

	mockUser.EXPECT().
		ListUsers(user.ListUsersQuery{Page: 1, Limit: 10}).
		Return([]user.User{{ID: 1}}, int64(1), nil)

	users, total, err := svc.ListUsers(user.ListUsersQuery{})
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(1), total)
}
