package mainwindow

import (
	"fmt"
	"strings"

	"github.com/bsmietanka/interactive-map/internal/app"
)

// statusText summarizes a load for the status bar.
func statusText(snap *app.Snapshot) string {
	if snap == nil || snap.Table == nil {
		return "Brak danych"
	}

	parts := []string{fmt.Sprintf("Działek: %d", snap.Table.Len())}
	if r := snap.Report; r != nil {
		parts = append(parts,
			fmt.Sprintf("z opisem: %d", r.Matched),
			fmt.Sprintf("bez opisu: %d", r.Unmatched),
		)
		if n := len(r.Warnings); n > 0 {
			parts = append(parts, fmt.Sprintf("ostrzeżenia: %d", n))
		}
	}
	if l := snap.Layer; l != nil {
		size := l.Size()
		m := fmt.Sprintf("mapa %.0f×%.0f px (%s", size.Width, size.Height, l.Format)
		if l.DPI > 0 {
			m += fmt.Sprintf(", %.0f dpi", l.DPI)
		}
		parts = append(parts, m+")")
	}
	return strings.Join(parts, " | ")
}

// zoomText shows zoom as a percentage of the original scan. scale is the
// display copy's scale, 1 when there is no scene.
func zoomText(zoom, scale float64) string {
	if scale <= 0 {
		scale = 1
	}
	return fmt.Sprintf("%.0f%%", zoom*scale*100)
}
