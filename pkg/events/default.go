package events

import (
	_ "embed"
)

//go:embed default_events.json
var defaultEvents []byte

// Default returns the dataset bundled with the binary.
func Default() (data Dataset) {
	data, err := Parse(defaultEvents, FormatJSON)
	if err != nil {
		// The embedded file is checked by tests; a failure here is a build defect.
		panic(err)
	}
	return data
}
