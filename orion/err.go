package orion

import (
	"fmt"
	"log/slog"
)

// Handle panics if err is not nil. The panic value is err, wrapped with
// the formatted description.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		wrapped := fmt.Errorf("%s: %w", fmt.Sprintf(desc, args...), err)
		slog.Error("Fatal error", slog.Any("err", wrapped))
		panic(wrapped)
	}
}
