package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schmitthub/stubkit/pkg/stub"
	"github.com/schmitthub/stubkit/pkg/vehicle"
	"github.com/schmitthub/stubkit/pkg/vehicle/vehicletest"
)

type vehicleOverrides struct {
	Speed      *float64 `mapstructure:"speed"`
	Heading    *float64 `mapstructure:"heading"`
	Steer      *string  `mapstructure:"steer"`
	Accelerate *bool    `mapstructure:"accelerate"`
	Stop       *bool    `mapstructure:"stop"`
}

type vehicleContract struct{}

func (vehicleContract) Name() string      { return "vehicle" }
func (vehicleContract) Interface() string { return vehicletest.Contract }

func (vehicleContract) Presets() []PresetInfo {
	return presetInfos(vehicletest.Presets)
}

func (vehicleContract) Members() []string {
	return []string{"get speed", "get heading", "set speed", "steer", "accelerate", "stop", "drive"}
}

func (vehicleContract) New(presets []string, overrides map[string]any) (Target, error) {
	var o vehicleOverrides
	if err := decodeOverrides(overrides, &o); err != nil {
		return nil, err
	}
	steerMode, err := parseVoidMode("steer", o.Steer)
	if err != nil {
		return nil, err
	}

	v, err := vehicletest.NewStubWithPresets(presets, func(s *vehicletest.Stubs) {
		if o.Speed != nil {
			s.Speed = *o.Speed
		}
		if o.Heading != nil {
			s.Heading = *o.Heading
		}
		switch steerMode {
		case voidNoop:
			s.SteerFn = func(vehicle.Direction, float64) {}
		case voidUnstubbed:
			s.SteerFn = nil
		}
		if o.Accelerate != nil {
			result := *o.Accelerate
			s.AccelerateFn = func(float64) bool { return result }
		}
		if o.Stop != nil {
			result := *o.Stop
			s.StopFn = func() bool { return result }
		}
	})
	if err != nil {
		return nil, err
	}
	return &vehicleTarget{stub: v}, nil
}

type vehicleTarget struct {
	stub *vehicletest.Stub
}

func (t *vehicleTarget) Recorder() *stub.Recorder {
	return t.stub.Recorder()
}

func (t *vehicleTarget) Invoke(member string, args []string) (string, error) {
	switch member {
	case "get":
		if err := wantArgs(member, args, 1); err != nil {
			return "", err
		}
		switch args[0] {
		case "speed":
			return formatFloat(t.stub.Speed()), nil
		case "heading":
			return formatFloat(t.stub.Heading()), nil
		}
		return "", fmt.Errorf("%w: property %q", ErrUnknownMember, args[0])

	case "set":
		if err := wantArgs(member, args, 2); err != nil {
			return "", err
		}
		switch args[0] {
		case "speed":
			speed, err := parseFloat(args[1])
			if err != nil {
				return "", err
			}
			t.stub.SetSpeed(speed)
			return "ok", nil
		case "heading":
			return "", fmt.Errorf("%w: heading", ErrReadOnly)
		}
		return "", fmt.Errorf("%w: property %q", ErrUnknownMember, args[0])

	case "steer":
		if err := wantArgs(member, args, 2); err != nil {
			return "", err
		}
		dir, err := vehicle.ParseDirection(args[0])
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBadArgs, err)
		}
		amount, err := parseFloat(args[1])
		if err != nil {
			return "", err
		}
		t.stub.Steer(dir, amount)
		return "ok", nil

	case "accelerate":
		if err := wantArgs(member, args, 1); err != nil {
			return "", err
		}
		delta, err := parseFloat(args[0])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(t.stub.Accelerate(delta)), nil

	case "stop":
		if err := wantArgs(member, args, 0); err != nil {
			return "", err
		}
		return strconv.FormatBool(t.stub.Stop()), nil

	case "drive":
		route, err := parseRoute(args)
		if err != nil {
			return "", err
		}
		n, err := vehicle.NewPilot(t.stub).Drive(route)
		if err != nil {
			return fmt.Sprintf("error after %d leg(s): %v", n, err), nil
		}
		return fmt.Sprintf("completed %d leg(s)", n), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMember, member)
}

// parseRoute parses legs written as direction:amount[:throttle].
func parseRoute(args []string) ([]vehicle.Leg, error) {
	route := make([]vehicle.Leg, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("%w: leg %q must be direction:amount[:throttle]", ErrBadArgs, arg)
		}
		dir, err := vehicle.ParseDirection(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
		}
		leg := vehicle.Leg{Direction: dir}
		if leg.Amount, err = parseFloat(parts[1]); err != nil {
			return nil, err
		}
		if len(parts) == 3 {
			if leg.Throttle, err = parseFloat(parts[2]); err != nil {
				return nil, err
			}
		}
		route = append(route, leg)
	}
	return route, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadArgs, s)
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
