// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for the dashboard frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Answers OPTIONS preflights directly and mirrors the request origin.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "meal_type is required")
	middleware.ParseJSONBody(r, &req)

ErrorResponse wraps the message in the standard ErrorResponse shape.
The feedback endpoint writes its own {success, error} rejection shape via
JSONResponse instead.
*/
package middleware
