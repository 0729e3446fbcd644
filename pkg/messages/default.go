package messages

import (
	"context"
	"embed"
	"fmt"
	"sync"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var defaultEntries = sync.OnceValue(func() map[string]map[string]any {
	entries, err := FSSource(YAMLParser{}, localeFS, "locales").Load(context.Background())
	if err != nil {
		panic(fmt.Sprintf("messages: embedded locales: %v", err))
	}
	return entries
})

// Default returns a new catalogue holding the embedded English messages.
// Each call returns an independent copy, so Merge on it never leaks into
// other callers.
func Default(opts ...Option) *Catalog {
	c, err := New(context.Background(), MapSource(defaultEntries()), opts...)
	if err != nil {
		panic(fmt.Sprintf("messages: embedded locales: %v", err))
	}
	return c
}
