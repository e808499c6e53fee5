// Package httpclienttest provides a configurable stub of httpclient.Client.
//
// Presets:
//
//   - ApplyNoop: every member harmless (MaxConnections 0, Connect true,
//     Do returns an empty 200 response, Close does nothing).
//   - ApplyFailedConnection: the host refuses connections.
//   - ApplyServerError: the host accepts connections and answers 500.
package httpclienttest

import (
	"io"
	"net/http"
	"strings"

	"github.com/schmitthub/stubkit/pkg/httpclient"
	"github.com/schmitthub/stubkit/pkg/stub"
)

// Contract is the name used in unstubbed-invocation errors.
const Contract = "httpclient.Client"

// Stubs holds one slot per httpclient.Client member.
type Stubs struct {
	MaxConnections int

	ConnectFn func(url string) bool
	DoFn      func(req *http.Request) (*http.Response, error)
	CloseFn   func()
}

// NewStubs returns a StubSet with MaxConnections at stub.Invalid and every
// method unstubbed.
func NewStubs() Stubs {
	return Stubs{
		MaxConnections: stub.Invalid,
		ConnectFn: func(string) bool {
			panic(stub.Unstubbed(Contract, "Connect"))
		},
		DoFn: func(*http.Request) (*http.Response, error) {
			panic(stub.Unstubbed(Contract, "Do"))
		},
		CloseFn: func() {
			panic(stub.Unstubbed(Contract, "Close"))
		},
	}
}

// ApplyNoop sets MaxConnections to 0, Connect to true, Do to an empty 200
// response and Close to a no-op.
func (s *Stubs) ApplyNoop() {
	s.MaxConnections = 0
	s.ConnectFn = connectOK
	s.DoFn = respondOK
	s.CloseFn = closeNoop
}

// ApplyFailedConnection sets MaxConnections to 1, Connect to false, Do to
// httpclient.ErrConnectionRefused and Close to a no-op.
func (s *Stubs) ApplyFailedConnection() {
	s.MaxConnections = 1
	s.ConnectFn = connectRefused
	s.DoFn = respondRefused
	s.CloseFn = closeNoop
}

// ApplyServerError sets Connect to true and Do to a 500 response.
// MaxConnections and Close are left as they are.
func (s *Stubs) ApplyServerError() {
	s.ConnectFn = connectOK
	s.DoFn = respondServerError
}

func connectOK(string) bool { return true }

func connectRefused(string) bool { return false }

func closeNoop() {}

func respondOK(req *http.Request) (*http.Response, error) {
	return Response(req, http.StatusOK, ""), nil
}

func respondServerError(req *http.Request) (*http.Response, error) {
	return Response(req, http.StatusInternalServerError, "internal server error"), nil
}

func respondRefused(*http.Request) (*http.Response, error) {
	return nil, httpclient.ErrConnectionRefused
}

// Response builds an in-memory response to req with the given status and body.
func Response(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		Status:        http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{},
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}

// Presets lists the named presets in the order they are documented.
var Presets = stub.Catalog[Stubs]{
	{Name: "noop", Description: "MaxConnections 0, Connect true, Do 200, Close no-op", Apply: (*Stubs).ApplyNoop},
	{Name: "failedConnection", Description: "MaxConnections 1, Connect false, Do connection refused", Apply: (*Stubs).ApplyFailedConnection},
	{Name: "serverError", Description: "Connect true, Do 500", Apply: (*Stubs).ApplyServerError},
}

// Factory builds httpclient StubSets.
var Factory = stub.Factory[Stubs]{
	Contract: Contract,
	Defaults: NewStubs,
	Presets:  Presets,
}
