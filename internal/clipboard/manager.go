package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/seek/internal/logger"
)

// ErrEmpty is returned when neither the system clipboard nor the internal
// register holds any text.
var ErrEmpty = errors.New("clipboard is empty")

// Manager reads and writes text through the system clipboard, keeping an
// internal register as a fallback when no system clipboard is available.
type Manager struct {
	useSystem bool
	register  string

	readSystem  func() (string, error)
	writeSystem func(string) error
}

// NewManager creates a clipboard manager. With useSystem false only the
// internal register is used.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		useSystem:   useSystem && !clipboard.Unsupported,
		readSystem:  clipboard.ReadAll,
		writeSystem: clipboard.WriteAll,
	}
}

// Copy stores text in the register and, if enabled, the system clipboard.
func (m *Manager) Copy(text string) error {
	m.register = text
	if !m.useSystem {
		return nil
	}
	if err := m.writeSystem(text); err != nil {
		logger.Warnf("ClipboardManager: system clipboard write failed, keeping internal copy: %v", err)
	}
	return nil
}

// Paste returns the system clipboard content, falling back to the register.
func (m *Manager) Paste() (string, error) {
	if m.useSystem {
		text, err := m.readSystem()
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			logger.Warnf("ClipboardManager: system clipboard read failed: %v", err)
		}
	}
	if m.register == "" {
		return "", ErrEmpty
	}
	return m.register, nil
}

// Needle returns the first line of the clipboard, suitable as a search needle.
func (m *Manager) Needle() (string, error) {
	text, err := m.Paste()
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(text, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return "", ErrEmpty
	}
	logger.Debugf("ClipboardManager: using %d byte needle from clipboard", len(line))
	return line, nil
}
