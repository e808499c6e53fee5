package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/stubkit/pkg/stub"
	"github.com/schmitthub/stubkit/pkg/vehicle"
)

func newVehicleTarget(t *testing.T, presets []string, overrides map[string]any) Target {
	t.Helper()
	target, err := vehicleContract{}.New(presets, overrides)
	require.NoError(t, err)
	return target
}

func TestVehicleTarget_Invoke(t *testing.T) {
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
			name:   "get default speed",
			member: "get", args: []string{"speed"},
			want: "-1",
		},
		{
			name:      "get overridden heading",
			overrides: map[string]any{"heading": 90},
			member:    "get", args: []string{"heading"},
			want: "90",
		},
		{
			name:   "set speed",
			member: "set", args: []string{"speed", "3.5"},
			want: "ok",
		},
		{
			name:   "set heading is read-only",
			member: "set", args: []string{"heading", "3"},
			wantErr: ErrReadOnly,
		},
		{
			name:    "steer with noop preset",
			presets: []string{"noop"},
			member:  "steer", args: []string{"left", "10"},
			want: "ok",
		},
		{
			name:    "steer bad direction",
			presets: []string{"noop"},
			member:  "steer", args: []string{"up", "10"},
			wantErr: ErrBadArgs,
		},
		{
			name:      "accelerate override",
			overrides: map[string]any{"accelerate": false},
			member:    "accelerate", args: []string{"5"},
			want: "false",
		},
		{
			name:    "stop with runaway preset",
			presets: []string{"runaway"},
			member:  "stop",
			want:    "false",
		},
		{
			name:    "stop takes no arguments",
			presets: []string{"noop"},
			member:  "stop", args: []string{"now"},
			wantErr: ErrBadArgs,
		},
		{
			name:    "drive completes",
			presets: []string{"noop"},
			member:  "drive", args: []string{"left:10", "right:5:2"},
			want: "completed 2 leg(s)",
		},
		{
			name:    "drive stalls",
			presets: []string{"stalled"},
			member:  "drive", args: []string{"left:10:4"},
			want: "error after 0 leg(s): leg 0: vehicle stalled",
		},
		{
			name:    "drive bad leg",
			presets: []string{"noop"},
			member:  "drive", args: []string{"left"},
			wantErr: ErrBadArgs,
		},
		{
			name:    "unknown member",
			member:  "honk",
			wantErr: ErrUnknownMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newVehicleTarget(t, tt.presets, tt.overrides)
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

func TestVehicleTarget_Unstubbed(t *testing.T) {
	target := newVehicleTarget(t, nil, nil)

	err := stub.Catch(func() {
		_, _ = target.Invoke("steer", []string{"left", "1"})
	})
	require.ErrorIs(t, err, stub.ErrUnstubbed)
	assert.Contains(t, err.Error(), "vehicle.Steerable.Steer")
	assert.True(t, target.Recorder().Called("Steer"))
}

func TestVehicleTarget_SteerOverrideUnstubbed(t *testing.T) {
	target := newVehicleTarget(t, []string{"noop"}, map[string]any{"steer": "unstubbed"})

	err := stub.Catch(func() {
		_, _ = target.Invoke("steer", []string{"right", "1"})
	})
	assert.ErrorIs(t, err, stub.ErrUnstubbed)

	// Other noop slots are untouched.
	got, err := target.Invoke("stop", nil)
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestVehicleContract_New_Errors(t *testing.T) {
	tests := []struct {
		name      string
		presets   []string
		overrides map[string]any
		wantErr   error
	}{
		{"unknown preset", []string{"flying"}, nil, stub.ErrUnknownPreset},
		{"unknown override", nil, map[string]any{"wings": 2}, ErrInvalidScript},
		{"bad void mode", nil, map[string]any{"steer": "sometimes"}, ErrInvalidScript},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vehicleContract{}.New(tt.presets, tt.overrides)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRoute(t *testing.T) {
	route, err := parseRoute([]string{"straight:0", "LEFT:12.5:3"})
	require.NoError(t, err)
	assert.Equal(t, []vehicle.Leg{
		{Direction: vehicle.Straight, Amount: 0},
		{Direction: vehicle.Left, Amount: 12.5, Throttle: 3},
	}, route)

	_, err = parseRoute([]string{"left:x"})
	assert.ErrorIs(t, err, ErrBadArgs)
}
