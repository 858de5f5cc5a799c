package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/erlanggafajar/nilai-ict/core"
	"github.com/erlanggafajar/nilai-ict/core/auth"
	"github.com/erlanggafajar/nilai-ict/core/user"
)

type authApi struct {
	conf     *core.Config
	authn    *auth.Authenticator
	users    *user.Service
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := authApi{
		conf:     deps.Conf,
		authn:    deps.Authenticator,
		users:    deps.UserSvc,
		validate: deps.Validate,
	}

	ag := g.Group("/auth")

	// un-authed endpoints
	ag.POST("/login", api.login)
	ag.POST("/register", api.register)

	// authed endpoints
	authed := ag.Group("", jwt)
	authed.POST("/refresh", api.refresh)
	authed.GET("/me", api.me)
	authed.POST("/logout", api.logout)
}

// Handlers

func (api *authApi) login(ctx echo.Context) error {
	data := new(LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	var sess auth.Session
	usr, err := api.authn.Login(ctx.Request().Context(), &sess, data.Username, data.Password)
	if err != nil {
		return err
	}

	token, err := generateToken(api.conf, getUserClaims(api.conf, usr))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// register creates an account. It never authenticates: a successful
// registration is followed by an explicit login from the client.
func (api *authApi) register(ctx echo.Context) error {
	data := new(user.RegisterUser)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.authn.Register(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *authApi) refresh(ctx echo.Context) error {
	token, err := refreshToken(api.conf, ctx, api.users)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (api *authApi) me(ctx echo.Context) error {
	sess := contextSession(ctx)
	return ctx.JSON(http.StatusOK, SessionResponse{
		Authenticated: sess.IsAuthenticated(),
		Username:      sess.Username(),
		Role:          sess.Role(),
	})
}

// logout clears the per-request session. The token itself cannot be revoked
// server-side without a shared session store; clients discard it.
func (api *authApi) logout(ctx echo.Context) error {
	sess := contextSession(ctx)
	api.authn.Logout(&sess)
	return ctx.NoContent(http.StatusNoContent)
}
