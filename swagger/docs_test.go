package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo_DocumentsEveryRoute(t *testing.T) {
	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	require.Equal(t, "/api/v1", doc.BasePath)

	routes := map[string][]string{
		"/home":                      {"get"},
		"/catalog/options":           {"get"},
		"/books":                     {"get"},
		"/books/{bookId}":            {"get"},
		"/books/{bookId}/reviews":    {"get", "post"},
		"/books/{bookId}/reserve":    {"post"},
		"/books/{bookId}/favorite":   {"post"},
		"/borrows/{recordId}/renew":  {"post"},
		"/borrows/{recordId}/return": {"post"},
		"/dashboard":                 {"get"},
		"/login":                     {"post"},
		"/register":                  {"post"},
	}
	for path, methods := range routes {
		for _, m := range methods {
			require.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}
}
