package echoapi

import (
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/labstack/echo/v4"

	"github.com/erlanggafajar/nilai-ict/core"
	"github.com/erlanggafajar/nilai-ict/core/auth"
	"github.com/erlanggafajar/nilai-ict/core/user"
)

const jwtContextKey = "userToken"

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	OrigIssuedAt int64  `json:"oriat,omitempty"`
	Username     string `json:"username,omitempty"`
	Role         string `json:"role,omitempty"`
	IsAdmin      bool   `json:"is_admin,omitempty"`
}

// newJWTConfig returns the JWT auth middleware config.
func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    jwtContextKey,
		Claims:        new(Claims),
	}
}

func getUserClaims(conf *core.Config, usr user.User, origIat ...int64) *Claims {
	now := time.Now()
	nownix := now.Unix()

	var oriat int64
	if len(origIat) > 0 {
		oriat = origIat[0]
	} else {
		oriat = nownix
	}

	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   strconv.Itoa(usr.ID),
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  nownix,
		},
		OrigIssuedAt: oriat,
		Username:     usr.Username,
		Role:         usr.Role,
		IsAdmin:      usr.IsAdmin(),
	}
}

// generateToken generates a signed JWT token string representing the user Claims.
func generateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(jwtContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// contextSession re-establishes the caller's session from the verified claims.
// A fresh session is derived on every request so role gates are always
// evaluated against the current snapshot, never a cached one.
func contextSession(ctx echo.Context) auth.Session {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return auth.Session{} // anonymous
	}
	return auth.NewAuthenticatedSession(claims.Username, claims.Role)
}

func refreshToken(conf *core.Config, ctx echo.Context, users *user.Service) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting context claims")
	}

	// check if refresh has not expired
	expTime := time.Unix(claims.OrigIssuedAt, 0).Add(conf.Server.JWTRefreshExpirationDelta)
	if time.Now().After(expTime) {
		return "", errRefreshExpired
	}

	// role can only change via a fresh login; re-read the account so a
	// refreshed token never outlives the stored state.
	usr, err := users.GetByUsername(ctx.Request().Context(), claims.Username)
	if err != nil {
		return "", errors.Wrap(err, "finding account by username")
	}

	newClaims := getUserClaims(conf, usr, claims.OrigIssuedAt)
	token, err := generateToken(conf, newClaims)
	return token, err
}
