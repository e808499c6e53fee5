package httpclienttest

import (
	"net/http"

	"github.com/schmitthub/stubkit/pkg/httpclient"
	"github.com/schmitthub/stubkit/pkg/stub"
)

var _ httpclient.Client = (*Stub)(nil)

// Stub implements httpclient.Client by forwarding to its own copy of Stubs.
type Stub struct {
	stubs Stubs
	calls stub.Recorder
}

// NewStub builds a Stub. configure runs once against the default Stubs and
// may be nil.
func NewStub(configure func(*Stubs)) *Stub {
	return &Stub{stubs: Factory.Build(configure)}
}

// NewStubWithPresets applies the named presets before configure.
func NewStubWithPresets(presets []string, configure func(*Stubs)) (*Stub, error) {
	stubs, err := Factory.BuildWith(presets, configure)
	if err != nil {
		return nil, err
	}
	return &Stub{stubs: stubs}, nil
}

// Recorder returns the stub's call log.
func (s *Stub) Recorder() *stub.Recorder {
	return &s.calls
}

func (s *Stub) MaxConnections() int {
	return s.stubs.MaxConnections
}

func (s *Stub) SetMaxConnections(n int) {
	s.stubs.MaxConnections = n
}

func (s *Stub) Connect(url string) bool {
	s.calls.Record("Connect", url)
	if s.stubs.ConnectFn == nil {
		panic(stub.Unstubbed(Contract, "Connect"))
	}
	return s.stubs.ConnectFn(url)
}

func (s *Stub) Do(req *http.Request) (*http.Response, error) {
	s.calls.Record("Do", req)
	if s.stubs.DoFn == nil {
		panic(stub.Unstubbed(Contract, "Do"))
	}
	return s.stubs.DoFn(req)
}

func (s *Stub) Close() {
	s.calls.Record("Close")
	if s.stubs.CloseFn == nil {
		panic(stub.Unstubbed(Contract, "Close"))
	}
	s.stubs.CloseFn()
}
