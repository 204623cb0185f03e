package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms reach the PUT and DELETE routes by
// POSTing with a `_method` query parameter. It must wrap the engine
// itself, since the router picks the handler by method before any gin
// middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch strings.ToUpper(r.URL.Query().Get("_method")) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
