package clipboard

import (
	"log/slog"

	atotto "github.com/atotto/clipboard"
	"github.com/tartampluch/untd/internal/config"
)

// Copier defines the contract for delivering output to the clipboard.
// The interface allows mocking in tests and decouples callers from the
// platform clipboard bindings.
type Copier interface {
	Copy(text string) error
}

// System implements Copier on the operating system clipboard.
type System struct{}

var _ Copier = System{}

// Copy places text on the clipboard.
func (System) Copy(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return err
	}
	slog.Debug(config.MsgCopyDone,
		config.LogKeyComponent, config.CompClipboard,
		config.LogKeySizeBytes, len(text),
	)
	return nil
}
