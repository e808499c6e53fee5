package stub

import "sync"

// Call records a single method invocation on a stub instance.
type Call struct {
	Method string
	Args   []any
}

// Recorder keeps the ordered log of method invocations on a stub instance.
// The zero value is ready to use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Record appends a call to the log.
func (r *Recorder) Record(method string, args ...any) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Method: method, Args: args})
	r.mu.Unlock()
}

// Calls returns a copy of the call log.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := make([]Call, len(r.calls))
	copy(calls, r.calls)
	return calls
}

// Methods returns the invoked method names in call order.
func (r *Recorder) Methods() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	methods := make([]string, len(r.calls))
	for i, c := range r.calls {
		methods[i] = c.Method
	}
	return methods
}

// CallCount returns the number of times method was called.
func (r *Recorder) CallCount(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, c := range r.calls {
		if c.Method == method {
			count++
		}
	}
	return count
}

// Called reports whether method was called at least once.
func (r *Recorder) Called(method string) bool {
	return r.CallCount(method) > 0
}

// Reset clears the call log.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
