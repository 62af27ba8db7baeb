package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/librarypro/library/internal/errs"
	"github.com/Astemirdum/librarypro/library/internal/handler"
	"github.com/Astemirdum/librarypro/library/internal/model"
	"github.com/Astemirdum/librarypro/pkg/auth"
	md "github.com/Astemirdum/librarypro/pkg/middleware"
	"github.com/Astemirdum/librarypro/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/librarypro/library/internal/handler/mocks"
)

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService, q model.CatalogQuery)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		rawQuery     string
		query        model.CatalogQuery
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService, q model.CatalogQuery) {
				r.EXPECT().
					ListBooks(context.Background(), q).
					Return(model.ListBooks{TotalElements: 0, Items: []model.Book{}}, nil)
			},
			rawQuery: "search=orwell&genre=Science+Fiction&sort=year",
			query:    model.CatalogQuery{Search: "orwell", Genre: "Science Fiction", Sort: model.SortByYear},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"totalElements":0,"items":[]}`,
			},
		},
		{
			name:         "err. unknown sort key",
			mockBehavior: func(r *service_mocks.MockLibraryService, q model.CatalogQuery) {},
			rawQuery:     "sort=pages",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"validation failed","errors":{"sort":"oneof=title author year rating availability"}}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService, q model.CatalogQuery) {
				r.EXPECT().
					ListBooks(context.Background(), q).
					Return(model.ListBooks{}, errors.New("db internal"))
			},
			rawQuery: "",
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books", h.ListBooks)

			r := httptest.NewRequest(http.MethodGet, "/books?"+tt.rawQuery, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.query)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService, bookID string)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		bookID       string
		expectedCode int
		expectedBody string
	}{
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockLibraryService, bookID string) {
				r.EXPECT().
					GetBook(context.Background(), bookID).
					Return(model.BookDetails{}, errs.ErrBookNotFound)
			},
			bookID:       "42",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"book not found"}`,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService, bookID string) {
				r.EXPECT().
					GetBook(context.Background(), bookID).
					Return(model.BookDetails{}, errors.New("db internal"))
			},
			bookID:       "1",
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"db internal"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.GET("/books/:bookId", h.GetBook)

			r := httptest.NewRequest(http.MethodGet, "/books/"+tt.bookID, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.bookID)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Reserve(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		userName     string
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Reserve(gomock.Any(), "john.doe", "1").
					Return(model.ActionResult{
						Outcome: model.OutcomeReserved,
						Title:   "Book Reserved",
						Message: `"The Great Gatsby" has been reserved for you.`,
					}, nil)
			},
			userName:     "john.doe",
			expectedCode: http.StatusOK,
			expectedBody: `{"outcome":"Reserved","title":"Book Reserved","message":"\"The Great Gatsby\" has been reserved for you."}`,
		},
		{
			name: "unavailable",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Reserve(gomock.Any(), "john.doe", "1").
					Return(model.ActionResult{
						Outcome: model.OutcomeUnavailable,
						Title:   "Book Unavailable",
						Message: "This book is currently not available.",
					}, nil)
			},
			userName:     "john.doe",
			expectedCode: http.StatusConflict,
			expectedBody: `{"outcome":"Unavailable","title":"Book Unavailable","message":"This book is currently not available."}`,
		},
		{
			name:         "err. no member",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"` + auth.ErrNoUserName.Error() + `"}`,
		},
		{
			name: "err. book not found",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Reserve(gomock.Any(), "john.doe", "1").
					Return(model.ActionResult{}, errs.ErrBookNotFound)
			},
			userName:     "john.doe",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"book not found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.POST("/books/:bookId/reserve", h.Reserve, md.MemberContext)

			r := httptest.NewRequest(http.MethodPost, "/books/1/reserve", http.NoBody)
			if tt.userName != "" {
				r.Header.Set(auth.XUserNameHeader, tt.userName)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Renew(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.POST("/borrows/:recordId/renew", h.Renew, md.MemberContext)

	svc.EXPECT().
		Renew(gomock.Any(), "john.doe", "rec-1").
		Return(model.ActionResult{
			Outcome: model.OutcomeRenewalNotEligible,
			Title:   "Renewal Not Available",
			Message: "No renewals left for this loan.",
		}, nil)

	r := httptest.NewRequest(http.MethodPost, "/borrows/rec-1/renew", http.NoBody)
	r.Header.Set(auth.XUserNameHeader, "john.doe")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), `"outcome":"RenewalNotEligible"`)
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService, recordID string)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		recordID     string
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService, recordID string) {
				r.EXPECT().
					Return(gomock.Any(), "john.doe", recordID).
					Return(model.ActionResult{
						Outcome: model.OutcomeReturned,
						Title:   "Book Returned",
						Message: `Thank you for returning "1984".`,
					}, nil)
			},
			recordID:     "6f1c2a8e-0b51-4d8a-9a4e-6c2b1f0e9a02",
			expectedCode: http.StatusOK,
			expectedBody: `{"outcome":"Returned","title":"Book Returned","message":"Thank you for returning \"1984\"."}`,
		},
		{
			name: "err. malformed record id",
			mockBehavior: func(r *service_mocks.MockLibraryService, recordID string) {
				r.EXPECT().
					Return(gomock.Any(), "john.doe", recordID).
					Return(model.ActionResult{}, errs.ErrRecordNotFound)
			},
			recordID:     "abc",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"borrow record not found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.POST("/borrows/:recordId/return", h.Return, md.MemberContext)

			r := httptest.NewRequest(http.MethodPost, "/borrows/"+tt.recordID+"/return", http.NoBody)
			r.Header.Set(auth.XUserNameHeader, "john.doe")
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.recordID)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ToggleFavorite(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.POST("/books/:bookId/favorite", h.ToggleFavorite, md.MemberContext)

	gomock.InOrder(
		svc.EXPECT().ToggleFavorite(gomock.Any(), "john.doe", "3").
			Return(model.ActionResult{Outcome: model.OutcomeFavoriteAdded}, nil),
		svc.EXPECT().ToggleFavorite(gomock.Any(), "john.doe", "3").
			Return(model.ActionResult{Outcome: model.OutcomeFavoriteRemoved}, nil),
	)

	for _, want := range []string{"FavoriteAdded", "FavoriteRemoved"} {
		r := httptest.NewRequest(http.MethodPost, "/books/3/favorite", http.NoBody)
		r.Header.Set(auth.XUserNameHeader, "john.doe")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"outcome":"`+want+`"`)
	}
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.GET("/dashboard", h.Dashboard, md.MemberContext)

	svc.EXPECT().
		Dashboard(gomock.Any(), "ghost").
		Return(model.Dashboard{}, errs.ErrMemberNotFound)

	r := httptest.NewRequest(http.MethodGet, "/dashboard", http.NoBody)
	r.Header.Set(auth.XUserNameHeader, "ghost")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"member not found"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "ok",
			body:         `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"secret123","confirmPassword":"secret123","agreeTerms":true}`,
			expectedCode: http.StatusCreated,
			expectedBody: `{"outcome":"Registered","title":"Account Created","message":"Welcome to LibraryPro, Jane!"}`,
		},
		{
			name:         "err. passwords differ",
			body:         `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"secret123","confirmPassword":"secret124","agreeTerms":true}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"validation failed","errors":{"confirmPassword":"eqfield=Password"}}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			h := handler.New(service_mocks.NewMockLibraryService(c), zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/register", h.Register)

			r := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
