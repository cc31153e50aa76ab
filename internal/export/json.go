package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dusk-indust/sample/internal/demo"
)

// RunExport is the top-level JSON export structure.
type RunExport struct {
	First UserExport `json:"first"`
	Sum   int32      `json:"sum"`
}

// UserExport describes the reported user. Debug carries the same text the
// plain output prints.
type UserExport struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Debug string `json:"debug"`
}

// Export converts a run result into its JSON form.
func Export(r demo.Result) RunExport {
	return RunExport{
		First: UserExport{
			ID:    r.First.ID,
			Name:  r.First.Name,
			Debug: r.First.String(),
		},
		Sum: r.Sum,
	}
}

// WriteJSON writes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r demo.Result) error {
	out, err := json.MarshalIndent(Export(r), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}
