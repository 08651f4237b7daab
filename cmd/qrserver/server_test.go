// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func newTestServer(t *testing.T) (*httptest.Server, *bytes.Buffer) {
	var logs bytes.Buffer
	srv := httptest.NewServer(newRouter(log.New(&logs, "", 0)))
	t.Cleanup(srv.Close)
	return srv, &logs
}

func TestHealth(t *testing.T) {
	srv, logs := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var v map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK || v["version"] != progVersion {
		t.Errorf("status %d, body %v", resp.StatusCode, v)
	}
	id := resp.Header.Get("X-Request-Id")
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("X-Request-Id %q: %v", id, err)
	}
	if !strings.Contains(logs.String(), id+" GET /health") {
		t.Errorf("log %q lacks request id", logs.String())
	}
}

func TestRequestIDPropagated(t *testing.T) {
	srv, _ := newTestServer(t)
	id := uuid.NewString()
	req, _ := http.NewRequest("GET", srv.URL+"/health", nil)
	req.Header.Set("X-Request-Id", id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-Id"); got != id {
		t.Errorf("X-Request-Id = %q, want %q", got, id)
	}
}

func TestEncode(t *testing.T) {
	srv, _ := newTestServer(t)
	body := `{"text": "HELLO WORLD", "errorCorrectLevel": "Q", "scale": 2, "margin": 1}`
	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("status %d: %s", resp.StatusCode, b)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type %q", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	// Version 1: 21 modules and 2 of margin, 2 pixels each.
	if d := img.Bounds().Dx(); d != 46 {
		t.Errorf("image width %d, want 46", d)
	}
}

func TestEncodeErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, tt := range []struct {
		body   string
		status int
	}{
		{"", http.StatusBadRequest},
		{"{", http.StatusBadRequest},
		{`{"text": "x", "errorCorrectLevel": "Z"}`, http.StatusBadRequest},
		{`{"text": "x", "maskPattern": 9}`, http.StatusBadRequest},
		{`{"text": "x", "version": 41}`, http.StatusBadRequest},
		{`{"text": "x", "scale": 0}`, http.StatusBadRequest},
		{`{"text": "HELLO WORLD", "scale": 148102320}`, http.StatusBadRequest},
		{`{"text": "x", "scale": 33}`, http.StatusBadRequest},
		{`{"text": "x", "margin": -1}`, http.StatusBadRequest},
		{`{"text": "x", "margin": 1099511627776}`, http.StatusBadRequest},
		{`{"text": "HELLO WORLD HELLO WORLD", "version": 1, "errorCorrectLevel": "H"}`,
			http.StatusRequestEntityTooLarge},
		{`{"text": "` + strings.Repeat("x", 3000) + `"}`,
			http.StatusRequestEntityTooLarge},
	} {
		resp, err := http.Post(srv.URL+"/", "application/json",
			strings.NewReader(tt.body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.status {
			t.Errorf("%.40q: status %d, want %d",
				tt.body, resp.StatusCode, tt.status)
		}
	}

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /: status %d, want %d",
			resp.StatusCode, http.StatusMethodNotAllowed)
	}
}
