// Stubdemo runs scenario scripts against configurable test stubs.
//
// Usage:
//
//	go build -o bin/stubdemo ./cmd/stubdemo
//	./bin/stubdemo presets
//	./bin/stubdemo run examples/steer.yaml
package main

import (
	"os"

	"github.com/schmitthub/stubkit/internal/stubdemo"
)

func main() {
	os.Exit(stubdemo.Main())
}
