package mapping

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed default_mapping.yaml
var defaultMappingYAML []byte

var loadDefault = sync.OnceValues(func() (*Table, error) {
	mf, err := Parse(defaultMappingYAML)
	if err != nil {
		return nil, fmt.Errorf("builtin mapping is broken: %w", err)
	}

	return Compile(mf)
})

// Default returns the compiled builtin table for the stock rig pair.
// The table is compiled once and shared; it is read-only by contract.
func Default() (*Table, error) {
	return loadDefault()
}
