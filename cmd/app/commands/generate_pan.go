package commands

import (
	"fmt"
	"io"

	panService "github.com/fintechx/panvault/internal/pan/service"
)

// RunGeneratePAN writes count Luhn-valid test PANs with the given issuer
// prefix and length, one per line.
func RunGeneratePAN(w io.Writer, prefix string, length, count int) error {
	generator := panService.NewGenerator()

	pans, err := generator.GenerateBatch(prefix, length, count)
	if err != nil {
		return fmt.Errorf("failed to generate pans: %w", err)
	}

	for _, pan := range pans {
		if _, err := fmt.Fprintln(w, pan.String()); err != nil {
			return fmt.Errorf("failed to write pan: %w", err)
		}
	}
	return nil
}
