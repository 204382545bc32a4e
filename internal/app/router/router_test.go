package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/adapters"
	authentity "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/domain/entity"
	authhandler "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/transport/handler"
	authusecase "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/usecase"
	intakeadapters "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/adapters"
	intakeentity "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"
	intakehandler "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/transport/handler"
	intakeusecase "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/usecase"
	jwtmw "github.com/blackcobradev90/waterLillyDemo/internal/platform/jwt"
	"github.com/blackcobradev90/waterLillyDemo/internal/shared/ratelimiter"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestServer wires the full stack over an in-memory store.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv(jwtmw.EnvKeyJWTSecret, "router-test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authentity.User{}, &intakeentity.UserForm{}))

	tokenGen := jwtmw.NewGenerator("router-test-secret", time.Hour)
	authUC := authusecase.NewAuthUsecase(authadapters.NewUserPostgres(db), tokenGen, time.Second)
	intakeUC := intakeusecase.NewIntakeUsecase(intakeadapters.NewFormPostgres(db), time.Second)

	r := NewRouter([]string{"*"},
		authhandler.NewAuthHandler(authUC),
		intakehandler.NewIntakeHandler(intakeUC),
		ratelimiter.NewLimiter(100, time.Minute))
	return r, db
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthScenario(t *testing.T) {
	r, db := newTestServer(t)

	// Signup succeeds with the id present and no password echoed.
	w := doJSON(r, http.MethodPost, "/auth/signup",
		`{"name":"A","email":"a@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var signupBody struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signupBody))
	assert.NotZero(t, signupBody.User["id"])
	assert.NotContains(t, signupBody.User, "password")

	// A second signup with the same email conflicts and adds no row.
	w = doJSON(r, http.MethodPost, "/auth/signup",
		`{"name":"B","email":"a@x.com","password":"secret2"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User already exists"}`, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&authentity.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Login with the right password yields a token.
	w = doJSON(r, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var loginBody struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginBody))
	assert.NotEmpty(t, loginBody.Token)
	assert.NotContains(t, loginBody.User, "password")

	// Wrong password and unknown account are the same 401.
	wrong := doJSON(r, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"wrong"}`, "")
	unknown := doJSON(r, http.MethodPost, "/auth/login",
		`{"email":"nobody@x.com","password":"secret1"}`, "")
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestIntakeScenario(t *testing.T) {
	r, db := newTestServer(t)

	// An unparseable birthday is rejected with nothing persisted.
	w := doJSON(r, http.MethodPost, "/userform", `{
		"firstName":"Jane","lastName":"Doe","email":"jane@example.com",
		"address":"1 Main St","phone":"0400000000","postCode":"2000",
		"gender":"female","birthday":"not-a-date",
		"expectedIncome":"LESS_THAN_50K","pregnantOrAdopting":false,
		"coverage":"MYSELF","tobaccoUser":false,"majorMedicalCondition":false}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&intakeentity.UserForm{}).Count(&count).Error)
	assert.Zero(t, count)

	// The same payload with a valid date is persisted and echoed with an id.
	w = doJSON(r, http.MethodPost, "/userform", `{
		"firstName":"Jane","lastName":"Doe","email":"jane@example.com",
		"address":"1 Main St","phone":"0400000000","postCode":"2000",
		"gender":"female","birthday":"1990-05-01T00:00:00Z",
		"expectedIncome":"LESS_THAN_50K","pregnantOrAdopting":false,
		"coverage":"MYSELF","tobaccoUser":false,"majorMedicalCondition":false}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		UserForm map[string]any `json:"userForm"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotZero(t, body.UserForm["id"])
	assert.Equal(t, "Jane", body.UserForm["firstName"])
}

func TestReviewRoutesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)

	// No token, no review.
	assert.Equal(t, http.StatusUnauthorized,
		doJSON(r, http.MethodGet, "/userforms", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized,
		doJSON(r, http.MethodGet, "/userforms/1", "", "").Code)

	// The schema endpoint stays public for wizard clients.
	assert.Equal(t, http.StatusOK,
		doJSON(r, http.MethodGet, "/userform/schema", "", "").Code)

	// A fresh login token opens the review surface.
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/auth/signup",
		`{"name":"A","email":"a@x.com","password":"secret1"}`, "").Code)
	w := doJSON(r, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var loginBody struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginBody))

	assert.Equal(t, http.StatusOK,
		doJSON(r, http.MethodGet, "/userforms", "", loginBody.Token).Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(r, http.MethodGet, "/userforms/999", "", loginBody.Token).Code)
}
