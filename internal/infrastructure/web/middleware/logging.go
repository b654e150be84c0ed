package middleware

import (
	"crypto-tracker/internal/infrastructure/logging"
	"net/http"
	"net/url"
	"strings"
)

// LoggingMiddleware complementa RequestTracingMiddleware con logging de debug
// y un aviso cuando la petición tiene un patrón sospechoso.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		logging.HTTP().RequestReceived(ctx, r.Method, r.URL.Path, r.UserAgent(), getRemoteIP(r))

		logging.Debug(ctx, "Processing HTTP request", logging.Fields{
			"headers": extractImportantHeaders(r),
			"query":   r.URL.RawQuery,
		})

		if pattern, ok := suspiciousPattern(r); ok {
			logging.Warn(ctx, "Suspicious request pattern", logging.Fields{
				"http_path": r.URL.Path,
				"pattern":   pattern,
				"remote_ip": getRemoteIP(r),
			})
		}

		next.ServeHTTP(w, r)
	})
}

// extractImportantHeaders extracts relevant headers for logging
func extractImportantHeaders(r *http.Request) map[string]string {
	headers := make(map[string]string)

	// Log important headers (avoid sensitive data)
	importantHeaders := []string{
		"Accept",
		"Accept-Encoding",
		"Accept-Language",
		"Cache-Control",
		"X-Forwarded-For",
		"X-Real-IP",
	}

	for _, header := range importantHeaders {
		if value := r.Header.Get(header); value != "" {
			headers[header] = value
		}
	}

	return headers
}

var suspiciousPatterns = []string{
	"../",
	"<script",
	"union select",
	"drop table",
	"exec(",
	"eval(",
}

// suspiciousPattern busca patrones comunes de ataque en path y query
func suspiciousPattern(r *http.Request) (string, bool) {
	query, err := url.QueryUnescape(r.URL.RawQuery)
	if err != nil {
		query = r.URL.RawQuery
	}

	target := strings.ToLower(r.URL.Path + "?" + query)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(target, pattern) {
			return pattern, true
		}
	}
	return "", false
}
