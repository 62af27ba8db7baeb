package handler

import (
	"net/http"

	"github.com/Astemirdum/librarypro/library/internal/model"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Login godoc
// @Summary      Sign in
// @Description  Checks the form only; there is no credential store behind it.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        login body model.LoginRequest true "credentials"
// @Success      200 {object} model.ActionResult
// @Failure      400 {object} errs.ValidationErrorResponse
// @Router       /login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}
	h.log.Info("login", zap.String("email", req.Email), zap.Bool("rememberMe", req.RememberMe))
	return c.JSON(http.StatusOK, model.ActionResult{
		Outcome: model.OutcomeLoginSucceeded,
		Title:   "Login Successful",
		Message: "Welcome back to LibraryPro!",
	})
}

// Register godoc
// @Summary  Create an account
// @Tags     account
// @Accept   json
// @Produce  json
// @Param    account body model.RegisterRequest true "registration form"
// @Success  201 {object} model.ActionResult
// @Failure  400 {object} errs.ValidationErrorResponse
// @Router   /register [post]
func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}
	h.log.Info("register", zap.String("email", req.Email))
	return c.JSON(http.StatusCreated, model.ActionResult{
		Outcome: model.OutcomeRegistered,
		Title:   "Account Created",
		Message: "Welcome to LibraryPro, " + req.FirstName + "!",
	})
}
