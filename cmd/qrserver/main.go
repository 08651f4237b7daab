// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrserver serves QR codes over HTTP.
//
//	GET  /health  {"version": "..."}
//	POST /        JSON options, responds with a PNG image
//
// The POST body holds "text", "errorCorrectLevel" (L, M, Q or H),
// "version" (0 for automatic), "maskPattern" (-1 for automatic),
// and optionally "scale", "margin" and "invert".
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/pborman/getopt/v2"
)

const progVersion = "1.0.0"

func main() {
	log.SetFlags(0)
	addr := getopt.StringLong("addr", 'a', ":8000", "listen address", "addr")
	getopt.Parse()
	if len(getopt.Args()) != 0 {
		getopt.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "qrserver: ", log.LstdFlags)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Println("listening at", *addr)
	log.Fatalln(srv.ListenAndServe())
}
