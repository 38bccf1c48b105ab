package mainwindow

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
)

// reloadPrompt keeps at most one reload question open. offer is called from
// the watcher goroutine, the answer from the UI.
type reloadPrompt struct {
	pending atomic.Bool
	ask     func(message string, answer func(ok bool))
}

// offer asks whether to reload after changed files were seen, unless a
// question is already open. It reports whether a question was asked.
func (p *reloadPrompt) offer(changed []string, reload func()) bool {
	if !p.pending.CompareAndSwap(false, true) {
		return false
	}
	p.ask(reloadMessage(changed), func(ok bool) {
		p.pending.Store(false)
		if ok {
			reload()
		}
	})
	return true
}

func reloadMessage(changed []string) string {
	names := make([]string, len(changed))
	for i, path := range changed {
		names[i] = filepath.Base(path)
	}
	return fmt.Sprintf("Zmieniono pliki: %s.\nWczytać dane ponownie?", strings.Join(names, ", "))
}
