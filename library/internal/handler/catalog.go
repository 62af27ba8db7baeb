package handler

import (
	"net/http"

	"github.com/Astemirdum/librarypro/library/internal/model"
	"github.com/labstack/echo/v4"
)

// Home godoc
// @Summary  Landing page data
// @Tags     catalog
// @Produce  json
// @Success  200 {object} model.Home
// @Router   /home [get]
func (h *Handler) Home(c echo.Context) error {
	home, err := h.librarySvc.Home(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, home)
}

// CatalogOptions godoc
// @Summary  Genres and sort keys of the catalog
// @Tags     catalog
// @Produce  json
// @Success  200 {object} model.CatalogOptions
// @Router   /catalog/options [get]
func (h *Handler) CatalogOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.librarySvc.CatalogOptions(c.Request().Context()))
}

// ListBooks godoc
// @Summary  Search, filter and sort the catalog
// @Tags     catalog
// @Produce  json
// @Param    search query string false "substring of title or author"
// @Param    genre  query string false "genre, All Genres for any"
// @Param    sort   query string false "title|author|year|rating|availability"
// @Success  200 {object} model.ListBooks
// @Failure  400 {object} errs.ValidationErrorResponse
// @Router   /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	var q model.CatalogQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return validationError(c, err)
	}
	books, err := h.librarySvc.ListBooks(c.Request().Context(), q)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary  Book details with reviews
// @Tags     catalog
// @Produce  json
// @Param    bookId path string true "book id"
// @Success  200 {object} model.BookDetails
// @Failure  404 {object} echo.HTTPError
// @Router   /books/{bookId} [get]
func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.librarySvc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// ListReviews godoc
// @Summary  Reviews of a book
// @Tags     catalog
// @Produce  json
// @Param    bookId path string true "book id"
// @Success  200 {array}  model.Review
// @Failure  404 {object} echo.HTTPError
// @Router   /books/{bookId}/reviews [get]
func (h *Handler) ListReviews(c echo.Context) error {
	reviews, err := h.librarySvc.ListReviews(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// AddReview godoc
// @Summary  Append a review to a book
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    bookId path string             true "book id"
// @Param    review body model.ReviewRequest true "review"
// @Success  201 {object} model.Review
// @Failure  400 {object} errs.ValidationErrorResponse
// @Failure  404 {object} echo.HTTPError
// @Router   /books/{bookId}/reviews [post]
func (h *Handler) AddReview(c echo.Context) error {
	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}
	review, err := h.librarySvc.AddReview(c.Request().Context(), c.Param("bookId"), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, review)
}
