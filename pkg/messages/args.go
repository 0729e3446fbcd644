package messages

import (
	"fmt"
	"maps"
	"slices"
)

// Args flattens placeholder values, such as validator.ValidationError's
// TranslationValues, into the name, value pairs T expects. Names are sorted
// so the result is stable.
func Args(values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}

	args := make([]string, 0, len(values)*2)
	for _, name := range slices.Sorted(maps.Keys(values)) {
		args = append(args, name, fmt.Sprint(values[name]))
	}
	return args
}
