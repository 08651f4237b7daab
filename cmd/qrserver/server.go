// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/qrcode-go/qr"
	"github.com/qrcode-go/qr/coding"
)

const maxBody = 1 << 16

// Rendering limits for POST /.
const (
	maxScale  = 32
	maxMargin = 16
)

// request is the body of POST /: encoding options plus rendering
// parameters.
type request struct {
	qr.Options
	Scale  *int `json:"scale"`  // image pixels per module, 1-32 [8]
	Margin *int `json:"margin"` // quiet zone modules, 0-16 [4]
	Invert bool `json:"invert"` // reverse colours
}

// newRouter returns the server's HTTP handler.
func newRouter(logger *log.Logger) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/", encodeHandler).Methods("POST")
	r.Use(requestID(logger))
	return r
}

// requestID tags each request with an id, returned in the
// X-Request-Id header, and logs it.
func requestID(logger *log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", id)
			logger.Printf("%s %s %s", id, r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"version": progVersion})
}

func encodeHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody+1))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		http.Error(w, "No body provided", http.StatusBadRequest)
		return
	}
	if len(body) > maxBody {
		http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
		return
	}
	req := request{Options: qr.DefaultOptions()}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Scale != nil && (*req.Scale < 1 || *req.Scale > maxScale) {
		http.Error(w, "scale out of range", http.StatusBadRequest)
		return
	}
	if req.Margin != nil && (*req.Margin < 0 || *req.Margin > maxMargin) {
		http.Error(w, "margin out of range", http.StatusBadRequest)
		return
	}
	c, err := qr.Encode(req.Options)
	if err != nil {
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	if req.Scale != nil {
		c.Scale = *req.Scale
	}
	if req.Margin != nil {
		c.Border = *req.Margin
	}
	c.Reverse = req.Invert
	png := c.PNG()
	if png == nil {
		http.Error(w, qr.ErrInvalidCode.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// statusOf maps encoding errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, coding.ErrInvalidParameter),
		errors.Is(err, coding.ErrInvalidModeCharacter):
		return http.StatusBadRequest
	case errors.Is(err, coding.ErrDataTooLong),
		errors.Is(err, coding.ErrCapacityExceeded):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
