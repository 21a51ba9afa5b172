// Package report provides result rendering for the fleet monitor. It
// defines the Writer interface implemented by the text and Excel renderers.
package report

import (
	"fleetmon/internal/model"
)

// Writer defines the interface for persisting poll results.
type Writer interface {
	// Write renders the poll result to the specified output path. The path
	// should include the file extension appropriate for the format.
	Write(result *model.PollResult, outputPath string) error

	// Format returns the format identifier for this writer, e.g. "excel".
	Format() string
}
