package script

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/schmitthub/stubkit/pkg/httpclient"
	"github.com/schmitthub/stubkit/pkg/httpclient/httpclienttest"
	"github.com/schmitthub/stubkit/pkg/stub"
)

type responseOverride struct {
	Status int    `mapstructure:"status"`
	Body   string `mapstructure:"body"`
	// Error makes Do fail instead of responding. "connection refused"
	// maps to httpclient.ErrConnectionRefused.
	Error string `mapstructure:"error"`
}

type httpClientOverrides struct {
	MaxConnections *int              `mapstructure:"max_connections"`
	Connect        *bool             `mapstructure:"connect"`
	Do             *responseOverride `mapstructure:"do"`
	Close          *string           `mapstructure:"close"`
}

type httpClientContract struct{}

func (httpClientContract) Name() string      { return "httpclient" }
func (httpClientContract) Interface() string { return httpclienttest.Contract }

func (httpClientContract) Presets() []PresetInfo {
	return presetInfos(httpclienttest.Presets)
}

func (httpClientContract) Members() []string {
	return []string{"get max_connections", "set max_connections", "connect", "do", "close", "fetch"}
}

func (httpClientContract) New(presets []string, overrides map[string]any) (Target, error) {
	var o httpClientOverrides
	if err := decodeOverrides(overrides, &o); err != nil {
		return nil, err
	}
	closeMode, err := parseVoidMode("close", o.Close)
	if err != nil {
		return nil, err
	}

	c, err := httpclienttest.NewStubWithPresets(presets, func(s *httpclienttest.Stubs) {
		if o.MaxConnections != nil {
			s.MaxConnections = *o.MaxConnections
		}
		if o.Connect != nil {
			result := *o.Connect
			s.ConnectFn = func(string) bool { return result }
		}
		if o.Do != nil {
			s.DoFn = respondWith(*o.Do)
		}
		switch closeMode {
		case voidNoop:
			s.CloseFn = func() {}
		case voidUnstubbed:
			s.CloseFn = nil
		}
	})
	if err != nil {
		return nil, err
	}
	return &httpClientTarget{stub: c}, nil
}

func respondWith(o responseOverride) func(*http.Request) (*http.Response, error) {
	if o.Error != "" {
		err := errors.New(o.Error)
		if o.Error == httpclient.ErrConnectionRefused.Error() {
			err = httpclient.ErrConnectionRefused
		}
		return func(*http.Request) (*http.Response, error) { return nil, err }
	}
	status := o.Status
	if status == 0 {
		status = http.StatusOK
	}
	return func(req *http.Request) (*http.Response, error) {
		return httpclienttest.Response(req, status, o.Body), nil
	}
}

type httpClientTarget struct {
	stub *httpclienttest.Stub
}

func (t *httpClientTarget) Recorder() *stub.Recorder {
	return t.stub.Recorder()
}

func (t *httpClientTarget) Invoke(member string, args []string) (string, error) {
	switch member {
	case "get":
		if err := wantArgs(member, args, 1); err != nil {
			return "", err
		}
		if args[0] != "max_connections" {
			return "", fmt.Errorf("%w: property %q", ErrUnknownMember, args[0])
		}
		return strconv.Itoa(t.stub.MaxConnections()), nil

	case "set":
		if err := wantArgs(member, args, 2); err != nil {
			return "", err
		}
		if args[0] != "max_connections" {
			return "", fmt.Errorf("%w: property %q", ErrUnknownMember, args[0])
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("%w: %q is not an integer", ErrBadArgs, args[1])
		}
		t.stub.SetMaxConnections(n)
		return "ok", nil

	case "connect":
		if err := wantArgs(member, args, 1); err != nil {
			return "", err
		}
		return strconv.FormatBool(t.stub.Connect(args[0])), nil

	case "do":
		if err := wantArgs(member, args, 2); err != nil {
			return "", err
		}
		req, err := http.NewRequest(strings.ToUpper(args[0]), args[1], nil)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBadArgs, err)
		}
		resp, err := t.stub.Do(req)
		if err != nil {
			return "error: " + err.Error(), nil
		}
		return formatResponse(resp)

	case "close":
		if err := wantArgs(member, args, 0); err != nil {
			return "", err
		}
		t.stub.Close()
		return "ok", nil

	case "fetch":
		if err := wantArgs(member, args, 1); err != nil {
			return "", err
		}
		body, err := httpclient.Fetch(t.stub, args[0])
		if err != nil {
			return "error: " + err.Error(), nil
		}
		return strconv.Quote(string(body)), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMember, member)
}

func formatResponse(resp *http.Response) (string, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	out := fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	if len(body) > 0 {
		out += " " + strconv.Quote(string(body))
	}
	return out, nil
}
