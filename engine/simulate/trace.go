package simulate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

var csvHeader = []string{
	"run", "frame", "elapsed", "scroll_offset", "current_offset", "velocity", "touch_velocity",
	"scrolling", "decaying", "section", "local_t",
	"pos_x", "pos_y", "pos_z", "fwd_x", "fwd_y", "fwd_z",
}

// WriteCSV writes every successful result as rows of one CSV table, one row per sample.
//
// Parameters:
//   - w: destination
//   - results: simulation results; failed runs are skipped
//
// Returns:
//   - error: error if writing fails
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		for _, s := range r.Samples {
			row := []string{
				r.Name,
				strconv.Itoa(s.Frame),
				formatFloat(s.Elapsed),
				formatFloat(s.ScrollOffset),
				formatFloat(s.CurrentOffset),
				formatFloat(s.Velocity),
				formatFloat(s.TouchVelocity),
				strconv.FormatBool(s.Scrolling),
				strconv.FormatBool(s.Decaying),
				strconv.Itoa(s.Section),
				formatFloat(s.LocalT),
				formatFloat(s.Position[0]), formatFloat(s.Position[1]), formatFloat(s.Position[2]),
				formatFloat(s.Forward[0]), formatFloat(s.Forward[1]), formatFloat(s.Forward[2]),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteYAML writes successful results as a YAML sequence.
//
// Parameters:
//   - w: destination
//   - results: simulation results; failed runs are skipped
//
// Returns:
//   - error: error if encoding fails
func WriteYAML(w io.Writer, results []Result) error {
	ok := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			ok = append(ok, r)
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ok); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', 7, 32)
}
