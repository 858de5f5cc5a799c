package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/erlanggafajar/nilai-ict/core"
	"github.com/erlanggafajar/nilai-ict/core/auth"
	"github.com/erlanggafajar/nilai-ict/core/grade"
	"github.com/erlanggafajar/nilai-ict/core/user"
	inmemdb "github.com/erlanggafajar/nilai-ict/storage/database/inmem"
)

type testLogger struct{}

func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

func testConfig() *core.Config {
	return &core.Config{
		Debug:     false,
		TestMode:  true,
		Env:       "TEST",
		AppName:   "Sistem Nilai ICT",
		SecretKey: "test-secret-key",
		Server: core.ServerConfig{
			JWTExpirationDelta:        time.Hour,
			JWTRefreshExpirationDelta: 4 * time.Hour,
		},
		Database: core.DatabaseConfig{Timeout: time.Second},
	}
}

func setupServer(t *testing.T) (Server, ServerDeps) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setupServer() failed: %v", err)
	}

	conf := testConfig()
	usrSvc := user.NewService(inmemdb.NewUserRepository(db))
	authn := auth.NewAuthenticator(usrSvc, testLogger{}, conf)
	gradeSvc := grade.NewService(inmemdb.NewGradeRepository(db))

	validate := validator.New()
	translator := newTestTranslator()
	core.InitValidators(validate, translator)

	deps := ServerDeps{
		Conf:          conf,
		Logger:        testLogger{},
		Authenticator: authn,
		UserSvc:       usrSvc,
		GradeSvc:      gradeSvc,
		Validate:      validate,
		Translator:    translator,
	}
	return NewServer(deps), deps
}

func newTestTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func doRequest(t *testing.T, srv Server, method, path, token string, data interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if data != nil {
		if err := json.NewEncoder(&body).Encode(data); err != nil {
			t.Fatalf("doRequest() failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func registerAccount(t *testing.T, deps ServerDeps, uname, pwd string) user.User {
	usr, err := deps.Authenticator.Register(context.Background(), user.RegisterUser{
		Username:        uname,
		Password:        pwd,
		PasswordConfirm: pwd,
	})
	if err != nil {
		t.Fatalf("registerAccount(%q) failed: %v", uname, err)
	}
	return usr
}

func loginToken(t *testing.T, srv Server, uname, pwd string) string {
	rec := doRequest(t, srv, http.MethodPost, "/v1/auth/login", "", LoginRequest{Username: uname, Password: pwd})
	if rec.Code != http.StatusOK {
		t.Fatalf("loginToken(%q) failed: status %d, body %s", uname, rec.Code, rec.Body.String())
	}
	var resp TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("loginToken(%q) failed: %v", uname, err)
	}
	return resp.Token
}
