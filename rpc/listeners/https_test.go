// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialdbd/rpc/fixtures"
	"github.com/bitmark-inc/socialdbd/rpc/listeners"
)

type testHandler struct {
	allowed map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allowed map[string][]*net.IPNet) {
	h.allowed = allowed
}

var client *http.Client

func init() {
	customTransport := http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // ignore certificate verification

	client = &http.Client{
		Transport: customTransport,
	}
}

func setup(t *testing.T) (int, listeners.Listener, *testHandler) {
	allow := "127.0.0.1/32"
	port := rand.Intn(30000) + 30000

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Allow: map[string][]string{
			"details": {allow},
			"admin":   {allow},
		},
	}

	th := &testHandler{}
	h, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), serverTLS(t), th)
	if err != nil {
		t.Fatalf("NewHTTPS with error: %s", err)
	}

	return port, h, th
}

func get(t *testing.T, port int, path string) string {
	time.Sleep(10 * time.Millisecond) // make sure server is ready
	url := fmt.Sprintf("https://127.0.0.1:%d/%s", port, path)
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("client get with error: %s", err)
	}
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	return string(content)
}

func TestHttpsListenerRoutes(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port, h, th := setup(t)

	err := h.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer h.Close()

	assert.Equal(t, "RPC", get(t, port, "socialdb/rpc"), "wrong RPC call")
	assert.Equal(t, "Details", get(t, port, "socialdb/details"), "wrong Details call")
	assert.Equal(t, "Root", get(t, port, ""), "wrong Root call")

	assert.Equal(t, 2, len(th.allowed), "wrong allow set")
	assert.Equal(t, "127.0.0.1/32", th.allowed["details"][0].String(), "wrong allowed network")
}

func TestHttpsListenerDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, h, "listener without listen addresses")
}

func TestHttpsListenerInvalidAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:2151"},
		Allow: map[string][]string{
			"details": {"not-a-network"},
		},
	}

	_, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, &testHandler{})
	assert.NotNil(t, err, "wrong error")
}
