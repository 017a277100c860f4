// Package output writes projections as JSON, text tables and line charts.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"compound-interest/domain"
)

// WriteJSON writes summary as an indented JSON array followed by a newline.
func WriteJSON(w io.Writer, summary []domain.YearlySnapshot) error {
	if summary == nil {
		summary = []domain.YearlySnapshot{}
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSerialization, err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSerialization, err)
	}
	return nil
}
