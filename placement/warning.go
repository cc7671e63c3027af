package placement

import "fmt"

// Warning describes a configuration value that was replaced or a computation
// that degraded to a safe fallback. Warnings never stop a component.
type Warning struct {
	Source  string
	Field   string
	Message string
}

func (w Warning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("%s: %s", w.Source, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", w.Source, w.Field, w.Message)
}

// Warnings is the side channel configuration steps report through.
type Warnings []Warning

func (ws *Warnings) Add(source, field, format string, args ...any) {
	*ws = append(*ws, Warning{Source: source, Field: field, Message: fmt.Sprintf(format, args...)})
}

func (ws *Warnings) Merge(other Warnings) {
	*ws = append(*ws, other...)
}
