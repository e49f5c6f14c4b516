// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	r.Post("/surveys", middleware.WithLogging(h.CreateSurvey))

Logs request start (method, path, client_ip, request_id) and completion
(status, duration_ms). The request ID comes from chi's RequestID middleware
when the router installs it.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ParseJSONBody rejects unknown fields and bodies over MaxBodyBytes:

	var req models.CreateSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

X-Forwarded-For wins over X-Real-IP, which wins over RemoteAddr.

CORS is handled by go-chi/cors in package router.
*/
package middleware
