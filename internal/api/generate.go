package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sword9322/vexgen/internal/generator"
)

// generate handles POST /api/v1/generate: rate limit, decode, validate, run
// the pipeline, respond with the prompt and rate-limit headers.
func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	rl := s.limiter.Allow("generate:" + clientIP(r))
	if !rl.Allowed {
		retryAfter := int(math.Ceil(time.Until(rl.ResetAt).Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		writeError(w, http.StatusTooManyRequests, apiError{
			Error:   "Too many requests. Please wait before trying again.",
			Code:    "RATE_LIMITED",
			Details: fmt.Sprintf("Reset in %ds", retryAfter),
		})
		return
	}

	var req generator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apiError{
			Error: "Invalid JSON body.",
			Code:  "BAD_REQUEST",
		})
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, apiError{
			Error:   "Validation failed. " + err.Error(),
			Code:    "VALIDATION_ERROR",
			Details: err.Error(),
		})
		return
	}

	res, err := s.gen.Generate(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, apiError{
			Error: "Prompt generation failed.",
			Code:  "GENERATION_ERROR",
		})
		return
	}

	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(rl.Remaining))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.Limit))
	if res.Metadata.UsedAI {
		w.Header().Set("X-Used-AI", "1")
	} else {
		w.Header().Set("X-Used-AI", "0")
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) generateMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, apiError{
		Error: "Method not allowed. Use POST.",
		Code:  "METHOD_NOT_ALLOWED",
	})
}

// clientIP picks the best-effort client address for rate limiting, preferring
// proxy headers over the socket peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
