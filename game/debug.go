package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugState holds the stats overlay flags
type DebugState struct {
	ShowStats bool // FPS, mode, particle and respawn counts in the corner
}

// drawStats prints the overlay line for the mounted effect.
func (d *DebugState) drawStats(screen *ebiten.Image, fps float64, effect *Effect) {
	if d == nil || !d.ShowStats {
		return
	}
	line := fmt.Sprintf("FPS %.0f  mode %s  frames %d", fps, effect.config.Mode, effect.Frames())
	if s := effect.State(); s != nil {
		line += fmt.Sprintf("  particles %d  respawns %d", len(s.Particles), s.Respawns)
	}
	ebitenutil.DebugPrintAt(screen, line, 8, 8)
}
