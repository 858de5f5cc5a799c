package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/erlanggafajar/nilai-ict/core/grade"
)

type gradeApi struct {
	svc      *grade.Service
	validate *validator.Validate
}

func registerGradeAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := gradeApi{
		svc:      deps.GradeSvc,
		validate: deps.Validate,
	}

	ng := g.Group("/nilai", jwt, sessionMiddleware())

	// any authenticated account may read
	ng.GET("", api.scoreQuery)
	ng.GET("/:id", api.scoreRetrieve)

	// writes are admin-only
	ng.POST("", api.scoreCreate, adminMiddleware())
	ng.PUT("/:id", api.scoreUpdate, adminMiddleware())
	ng.DELETE("/:id", api.scoreDestroy, adminMiddleware())
}

func (api *gradeApi) scoreID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}

// Handlers

func (api *gradeApi) scoreQuery(ctx echo.Context) error {
	scores, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, scores)
}

func (api *gradeApi) scoreRetrieve(ctx echo.Context) error {
	id, err := api.scoreID(ctx)
	if err != nil {
		return err
	}
	score, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, score)
}

func (api *gradeApi) scoreCreate(ctx echo.Context) error {
	data := new(grade.NewStudentScore)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	score, err := api.svc.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, score)
}

func (api *gradeApi) scoreUpdate(ctx echo.Context) error {
	id, err := api.scoreID(ctx)
	if err != nil {
		return err
	}

	data := new(grade.NewStudentScore)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	score, err := api.svc.Update(ctx.Request().Context(), id, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, score)
}

func (api *gradeApi) scoreDestroy(ctx echo.Context) error {
	id, err := api.scoreID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
