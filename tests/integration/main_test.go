package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/consite-dev/consite-go/internal/api/handlers"
	"github.com/consite-dev/consite-go/internal/api/middleware"
	"github.com/consite-dev/consite-go/internal/api/routes"
	"github.com/consite-dev/consite-go/internal/application"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/config/db"
	"github.com/consite-dev/consite-go/internal/domain/project"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/internal/repository"
	"github.com/consite-dev/consite-go/internal/testutils"
	"github.com/consite-dev/consite-go/pkg/googleauth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	router    *gin.Engine
	gormDB    *gorm.DB
	jwtSigner *middleware.JWT
	userSeq   atomic.Uint64
)

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()

	var err error
	gormDB, err = gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	db.CreateEnums(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	db.InitWithGormDB(gormDB)

	cfg := &config.Config{
		Env:                   "test",
		JwtSecret:             "integration-secret",
		Issuer:                "consite",
		TokenTTL:              time.Hour,
		DefaultWorkerPassword: "worker123",
	}
	jwtSigner = middleware.NewJWT(cfg)

	repos := repository.NewRepositories(gormDB)
	services := application.New(repos, cfg, jwtSigner, googleauth.New(""), zap.NewNop())
	authMiddleware := middleware.NewAuth(repos, jwtSigner)

	gin.SetMode(gin.TestMode)
	router = gin.New()
	h := handlers.New(services, cfg, router)
	routes.RegisterRoutes(router, h, authMiddleware)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

// --- Helper functions ---

// doRequest sends a JSON request through the router and, when expectStatus is
// non-zero, fails the test on any other status.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// seedProject inserts a reference project row; projects have no CRUD surface.
func seedProject(t *testing.T) uint {
	p := project.Project{
		Name:     fmt.Sprintf("Site %d", userSeq.Add(1)),
		Location: "Riverside",
	}
	require.NoError(t, gormDB.Create(&p).Error)
	return p.ID
}

// seedUser inserts a user directly and returns it with a valid token. Needed
// for roles the public signup endpoint refuses to grant.
func seedUser(t *testing.T, role string) (user.User, string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	require.NoError(t, err)
	password := string(hashed)

	u := user.User{
		Name:     role,
		Email:    fmt.Sprintf("%s-%d@test.com", role, userSeq.Add(1)),
		Password: &password,
		Role:     role,
	}
	require.NoError(t, gormDB.Create(&u).Error)

	token, err := jwtSigner.GenerateToken(u.ID, u.Role)
	require.NoError(t, err)
	return u, token
}
