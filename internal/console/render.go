package console

import (
	"fmt"
	"io"

	"isbnsplit/pkg/model"
)

const (
	Prompt = "Enter an ISBN (i.e. 978-0-393-97950-3): "

	TooLongMessage = "Too many characters input."
	FatalMessage   = "Fatal program error!"
)

// Render writes a result the way the terminal shows it: one labeled line
// per present group on success, or the failure message.
func Render(w io.Writer, result model.ValidationResult) error {
	groups, ok := result.Groups()
	if !ok {
		_, err := fmt.Fprintln(w, result.Kind().Message())
		return err
	}

	for i, g := range groups {
		if !g.Present {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", model.GroupIndex(i).Label(), g.Value); err != nil {
			return err
		}
	}
	return nil
}
