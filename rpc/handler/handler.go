// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/counter"
	"github.com/bitmark-inc/socialdbd/mode"
)

// Handler - HTTPS endpoints
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// Status - store figures reported by details
type Status interface {
	Status() mode.Mode
	AccountCount() uint64
	NodeCount() uint64
}

type handler struct {
	sync.RWMutex
	log            *logger.L
	server         *rpc.Server
	start          time.Time
	version        string
	maxConnections uint64
	count          *counter.Counter
	status         Status
	allow          map[string][]*net.IPNet
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}

func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}

func (c *internalConnection) Close() error {
	return nil
}

// New - create the HTTPS handler
//
// count is shared with the JSON RPC listener so both are limited by
// maxConnections
func New(
	log *logger.L,
	server *rpc.Server,
	start time.Time,
	version string,
	maxConnections uint64,
	count *counter.Counter,
	status Status,
) Handler {
	return &handler{
		log:            log,
		server:         server,
		start:          start,
		version:        version,
		maxConnections: maxConnections,
		count:          count,
		status:         status,
		allow:          make(map[string][]*net.IPNet),
	}
}

// SetAllow - replace the access lists
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendError(w, http.StatusNotFound, "not found")
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.count.Increment() > h.maxConnections {
		h.count.Decrement()
		sendError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		return
	}
	defer h.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("serve request error: %s", err)
		sendError(w, http.StatusInternalServerError, "internal server error")
		return
	}
}

// DetailsReply - body returned by details
type DetailsReply struct {
	Status   mode.Mode `json:"status"`
	Accounts uint64    `json:"accounts"`
	Nodes    uint64    `json:"nodes"`
	RPCs     uint64    `json:"rpcs"`
	Version  string    `json:"version"`
	Uptime   string    `json:"uptime"`
}

// Details - daemon state for monitoring
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if !h.isAllowed("details", r) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendError(w, http.StatusForbidden, "forbidden")
		return
	}

	if h.count.Increment() > h.maxConnections {
		h.count.Decrement()
		sendError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		return
	}
	defer h.count.Decrement()

	reply := DetailsReply{
		Status:   h.status.Status(),
		Accounts: h.status.AccountCount(),
		Nodes:    h.status.NodeCount(),
		RPCs:     h.count.Uint64(),
		Version:  h.version,
		Uptime:   time.Since(h.start).String(),
	}

	sendReply(w, http.StatusOK, reply)
}

// an empty list for a path denies everyone
func (h *handler) isAllowed(path string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last < 0 {
		return false
	}
	ip := net.ParseIP(strings.Trim(r.RemoteAddr[:last], "[]"))
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()

	for _, network := range h.allow[path] {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

type errorReply struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func sendError(w http.ResponseWriter, code int, message string) {
	sendReply(w, code, errorReply{
		Code:  code,
		Error: message,
	})
}

func sendReply(w http.ResponseWriter, code int, reply interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(reply)
}
