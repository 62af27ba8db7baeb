package handler

import (
	"net/http"

	"github.com/Astemirdum/librarypro/pkg/auth"
	"github.com/labstack/echo/v4"
)

// Reserve godoc
// @Summary  Reserve a copy of a book
// @Tags     member
// @Produce  json
// @Param    X-User-Name header string true "member"
// @Param    bookId      path   string true "book id"
// @Success  200 {object} model.ActionResult
// @Failure  409 {object} model.ActionResult
// @Failure  404 {object} echo.HTTPError
// @Router   /books/{bookId}/reserve [post]
func (h *Handler) Reserve(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	res, err := h.librarySvc.Reserve(ctx, userName, c.Param("bookId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(actionStatus(res), res)
}

// ToggleFavorite godoc
// @Summary  Add the book to favorites or remove it
// @Tags     member
// @Produce  json
// @Param    X-User-Name header string true "member"
// @Param    bookId      path   string true "book id"
// @Success  200 {object} model.ActionResult
// @Router   /books/{bookId}/favorite [post]
func (h *Handler) ToggleFavorite(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	res, err := h.librarySvc.ToggleFavorite(ctx, userName, c.Param("bookId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(actionStatus(res), res)
}

// Renew godoc
// @Summary  Renew a loan
// @Tags     member
// @Produce  json
// @Param    X-User-Name header string true "member"
// @Param    recordId    path   string true "borrow record id"
// @Success  200 {object} model.ActionResult
// @Failure  409 {object} model.ActionResult
// @Router   /borrows/{recordId}/renew [post]
func (h *Handler) Renew(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	res, err := h.librarySvc.Renew(ctx, userName, c.Param("recordId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(actionStatus(res), res)
}

// Return godoc
// @Summary  Return a borrowed book
// @Tags     member
// @Produce  json
// @Param    X-User-Name header string true "member"
// @Param    recordId    path   string true "borrow record id"
// @Success  200 {object} model.ActionResult
// @Failure  409 {object} model.ActionResult
// @Router   /borrows/{recordId}/return [post]
func (h *Handler) Return(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	res, err := h.librarySvc.Return(ctx, userName, c.Param("recordId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(actionStatus(res), res)
}

// Dashboard godoc
// @Summary  Member dashboard
// @Tags     member
// @Produce  json
// @Param    X-User-Name header string true "member"
// @Success  200 {object} model.Dashboard
// @Failure  404 {object} echo.HTTPError
// @Router   /dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	dash, err := h.librarySvc.Dashboard(ctx, userName)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, dash)
}
