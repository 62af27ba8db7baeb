package handler

import (
	"net/http"

	"github.com/Astemirdum/librarypro/library/internal/errs"
	"github.com/Astemirdum/librarypro/library/internal/model"
	md "github.com/Astemirdum/librarypro/pkg/middleware"
	"github.com/Astemirdum/librarypro/pkg/validate"
	_ "github.com/Astemirdum/librarypro/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
	}
}

// @title       LibraryPro API
// @version     1.0
// @description Library catalog, loans and member dashboard.
// @BasePath    /api/v1
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/home", h.Home)
	api.GET("/catalog/options", h.CatalogOptions)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.GET("/books/:bookId/reviews", h.ListReviews)
	api.POST("/books/:bookId/reviews", h.AddReview)
	api.POST("/login", h.Login)
	api.POST("/register", h.Register)

	member := api.Group("", md.MemberContext)
	member.POST("/books/:bookId/reserve", h.Reserve)
	member.POST("/books/:bookId/favorite", h.ToggleFavorite)
	member.POST("/borrows/:recordId/renew", h.Renew)
	member.POST("/borrows/:recordId/return", h.Return)
	member.GET("/dashboard", h.Dashboard)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) httpError(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func validationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errs.ValidationErrorResponse{
		Message: "validation failed",
		Errors:  validate.Fields(err),
	})
}

// actionStatus reports refused actions as conflicts; the body carries the outcome either way.
func actionStatus(res model.ActionResult) int {
	if res.Outcome.Succeeded() {
		return http.StatusOK
	}
	return http.StatusConflict
}
