package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/stubkit/pkg/stub"
)

func newHTTPClientTarget(t *testing.T, presets []string, overrides map[string]any) Target {
	t.Helper()
	target, err := httpClientContract{}.New(presets, overrides)
	require.NoError(t, err)
	return target
}

func TestHTTPClientTarget_Invoke(t *testing.T) {
	tests := []struct {
		name      string
		presets   []string
		overrides map[string]any
		member    string
		args      []string
		want      string
		wantErr   error
	}{
		{
			name:   "default max connections",
			member: "get", args: []string{"max_connections"},
			want: "-1",
		},
		{
			name:    "failed connection preset max connections",
			presets: []string{"failedConnection"},
			member:  "get", args: []string{"max_connections"},
			want: "1",
		},
		{
			name:   "set max connections",
			member: "set", args: []string{"max_connections", "8"},
			want: "ok",
		},
		{
			name:   "set max connections not an integer",
			member: "set", args: []string{"max_connections", "many"},
			wantErr: ErrBadArgs,
		},
		{
			name:   "unknown property",
			member: "get", args: []string{"timeout"},
			wantErr: ErrUnknownMember,
		},
		{
			name:    "connect refused",
			presets: []string{"failedConnection"},
			member:  "connect", args: []string{"http://example.test"},
			want: "false",
		},
		{
			name:    "do with noop preset",
			presets: []string{"noop"},
			member:  "do", args: []string{"get", "http://example.test"},
			want: "200 OK",
		},
		{
			name:    "do with server error preset",
			presets: []string{"serverError"},
			member:  "do", args: []string{"GET", "http://example.test"},
			want: `500 Internal Server Error "internal server error"`,
		},
		{
			name:      "do override body",
			overrides: map[string]any{"do": map[string]any{"status": 201, "body": "made"}},
			member:    "do", args: []string{"POST", "http://example.test"},
			want: `201 Created "made"`,
		},
		{
			name:      "do override error",
			overrides: map[string]any{"do": map[string]any{"error": "connection refused"}},
			member:    "do", args: []string{"GET", "http://example.test"},
			want: "error: connection refused",
		},
		{
			name:    "fetch ok",
			presets: []string{"noop"},
			overrides: map[string]any{"do": map[string]any{"body": "hello"}},
			member:  "fetch", args: []string{"http://example.test"},
			want: `"hello"`,
		},
		{
			name:    "fetch unreachable",
			presets: []string{"failedConnection"},
			member:  "fetch", args: []string{"http://example.test"},
			want: "error: connect http://example.test: host unreachable",
		},
		{
			name:    "fetch server error",
			presets: []string{"noop", "serverError"},
			member:  "fetch", args: []string{"http://example.test"},
			want: "error: GET http://example.test: unexpected status 500 Internal Server Error",
		},
		{
			name:    "close",
			presets: []string{"noop"},
			member:  "close",
			want:    "ok",
		},
		{
			name:    "unknown member",
			member:  "retry",
			wantErr: ErrUnknownMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newHTTPClientTarget(t, tt.presets, tt.overrides)
			got, err := target.Invoke(tt.member, tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPClientTarget_FetchClosesUnstubbed(t *testing.T) {
	// serverError leaves Close unstubbed, and Fetch closes after connecting.
	target := newHTTPClientTarget(t, []string{"serverError"}, nil)

	err := stub.Catch(func() {
		_, _ = target.Invoke("fetch", []string{"http://example.test"})
	})
	require.ErrorIs(t, err, stub.ErrUnstubbed)
	assert.Contains(t, err.Error(), "httpclient.Client.Close")
	assert.Equal(t, []string{"Connect", "Do", "Close"}, target.Recorder().Methods())
}

func TestHTTPClientTarget_CloseOverride(t *testing.T) {
	target := newHTTPClientTarget(t, []string{"noop"}, map[string]any{"close": "unstubbed"})

	err := stub.Catch(func() {
		_, _ = target.Invoke("close", nil)
	})
	assert.ErrorIs(t, err, stub.ErrUnstubbed)
}

func TestHTTPClientContract_New_Errors(t *testing.T) {
	_, err := httpClientContract{}.New([]string{"slow"}, nil)
	assert.ErrorIs(t, err, stub.ErrUnknownPreset)

	_, err = httpClientContract{}.New(nil, map[string]any{"retries": 3})
	assert.ErrorIs(t, err, ErrInvalidScript)

	_, err = httpClientContract{}.New(nil, map[string]any{"close": "maybe"})
	assert.ErrorIs(t, err, ErrInvalidScript)
}
