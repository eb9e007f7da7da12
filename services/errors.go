package services

import "strings"

// ValidationError reports caller input that can't be accepted. Handlers
// surface it as HTTP 400.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + " (missing: " + strings.Join(e.Fields, ", ") + ")"
}

// missingFields returns the names whose values are blank after trimming,
// in the order given.
func missingFields(fields ...[2]string) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			missing = append(missing, f[0])
		}
	}
	return missing
}
