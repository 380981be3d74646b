package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dark-seas/internal/core"
	"github.com/vovakirdan/dark-seas/internal/hazard"
	"github.com/vovakirdan/dark-seas/internal/run"
)

// Glyphs
const (
	glyphBeam     = '·'
	glyphWave     = '~'
	glyphEdge     = '░'
	glyphIce      = '▲'
	glyphIceSmall = '△'
	glyphSurvivor = '@'
	glyphDock     = '+'
	glyphHarbor   = 'H'
)

// Each row covers twice the distance of a column, so the sea keeps its
// proportions in a terminal cell grid.
const (
	metersPerCol = 1.0
	metersPerRow = 2.0
)

var boatGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// view maps world coordinates to screen cells around a center.
type view struct {
	center core.Vec2
	rect   core.Rect
}

func (v view) toScreen(p core.Vec2) (int, int) {
	cx := v.rect.X + v.rect.W/2
	cy := v.rect.Y + v.rect.H/2
	x := cx + int(math.Round((p.X-v.center.X)/metersPerCol))
	y := cy - int(math.Round((p.Z-v.center.Z)/metersPerRow))
	return x, y
}

func (v view) toWorld(x, y int) core.Vec2 {
	cx := v.rect.X + v.rect.W/2
	cy := v.rect.Y + v.rect.H/2
	return core.V(
		v.center.X+float64(x-cx)*metersPerCol,
		v.center.Z-float64(y-cy)*metersPerRow,
	)
}

// Render draws the current phase to dst.
func (s *Sim) Render(dst *core.Screen) {
	dst.Clear()

	switch s.Phase() {
	case run.PhaseHarbor:
		s.renderHarbor(dst)
	case run.PhaseExpedition:
		s.renderSea(dst)
		s.renderHUD(dst)
		s.renderRescue(dst)
		s.renderToast(dst)
		if s.paused {
			drawPanel(dst, core.ColorBrightWhite, "PAUSED", "", "P to resume")
		}
	case run.PhaseDebrief:
		s.renderSea(dst)
		s.renderDebrief(dst)
	}
}

func (s *Sim) renderHarbor(dst *core.Screen) {
	drawPanel(dst, core.ColorHarbor,
		"DARK SEAS",
		fmt.Sprintf("Legacy Points: %d", s.ledger.Points()),
		"",
		"Enter to set sail",
	)
}

// visible reports whether a world point can be seen from the boat.
func (s *Sim) visible(p core.Vec2) bool {
	pos := s.controller.Position()
	if pos.Dist(p) <= s.cfg.Run.AmbientVisibility {
		return true
	}
	return s.light.Illuminates(pos, s.controller.Heading(), p)
}

func (s *Sim) inPatch(p core.Vec2) bool {
	return math.Abs(p.X) <= s.patch.Width/2 && math.Abs(p.Z) <= s.patch.Depth/2
}

func (s *Sim) renderSea(dst *core.Screen) {
	if dst.Height() < 3 {
		return
	}
	v := view{
		center: s.controller.Position(),
		rect:   core.NewRect(0, 1, dst.Width(), dst.Height()-1),
	}

	// Water, beam and patch edge
	for y := v.rect.Y; y < v.rect.Bottom(); y++ {
		for x := v.rect.X; x < v.rect.Right(); x++ {
			p := v.toWorld(x, y)
			switch {
			case !s.inPatch(p):
				dst.SetColor(x, y, glyphEdge, core.ColorGray)
			case s.visible(p):
				dst.SetColor(x, y, glyphBeam, core.ColorBeam)
			case wave(x+int(v.center.X), y-int(v.center.Z/metersPerRow), s.tick):
				dst.SetColor(x, y, glyphWave, core.ColorSea)
			}
		}
	}

	// Harbor lights are always visible
	for deg := 0.0; deg < 360; deg += 10 {
		x, y := v.toScreen(s.dock.Pos.Add(core.FromHeading(deg).Scale(s.dock.Radius)))
		dst.SetColor(x, y, glyphDock, core.ColorHarbor)
	}
	hx, hy := v.toScreen(s.dock.Pos)
	dst.SetColor(hx, hy, glyphHarbor, core.ColorHarbor)

	// Ice floes, only where lit
	for _, ice := range s.patch.Ice {
		r := ice.Radius()
		x0, y0 := v.toScreen(ice.Pos.Add(core.V(-r, r)))
		x1, y1 := v.toScreen(ice.Pos.Add(core.V(r, -r)))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				p := v.toWorld(x, y)
				if p.Dist(ice.Pos) > r || !s.visible(p) {
					continue
				}
				g := glyphIce
				if ice.Size() == hazard.SizeSmall {
					g = glyphIceSmall
				}
				c := core.ColorIce
				if s.contacts.Touching(ice.ID) {
					c = core.ColorDanger
				}
				dst.SetColor(x, y, g, c)
			}
		}
	}

	// Survivors
	for _, t := range s.registry.Targets() {
		if t.IsClaimed() || !s.visible(t.Pos) {
			continue
		}
		x, y := v.toScreen(t.Pos)
		dst.SetColor(x, y, glyphSurvivor, core.ColorSurvivor)
	}

	// Boat
	bx, by := v.toScreen(v.center)
	c := core.ColorBoat
	if s.hull.IsSinking() {
		c = core.ColorDanger
	}
	dst.SetColor(bx, by, boatGlyph(s.controller.Heading()), c)
}

// wave scatters whitecaps that roll slowly across the dark water.
func wave(x, y, tick int) bool {
	h := uint32(x*73856093) ^ uint32(y*19349663) ^ uint32((tick/20)*83492791)
	return h%23 == 0
}

func boatGlyph(heading float64) rune {
	return boatGlyphs[octant(heading)]
}

func compass(heading float64) string {
	return compassPoints[octant(heading)]
}

func octant(heading float64) int {
	return int(math.Floor(core.WrapDegrees(heading+22.5)/45)) % 8
}

func (s *Sim) renderHUD(dst *core.Screen) {
	st := s.Status()

	x := 0
	dst.DrawTextColor(x, 0, "FUEL", core.ColorYellow)
	x += 5
	dst.DrawBar(x, 0, 10, st.Fuel, barColor(st.Fuel))
	x += 11

	dst.DrawTextColor(x, 0, "HULL", core.ColorWhite)
	x += 5
	dst.DrawBar(x, 0, 10, st.Hull, barColor(st.Hull))
	x += 11

	info := fmt.Sprintf("P %d/%d  HARBOR %3.0fm %-2s  THR %+4.0f%%  LEGACY %d",
		st.Passengers, st.MaxPassengers,
		st.HarborDist, compass(st.HarborBearing),
		st.Throttle*100,
		s.ledger.Points(),
	)
	dst.DrawTextColor(x, 0, info, core.ColorWhite)

	if st.InHarbor {
		dst.DrawTextCentered(dst.Height()-1, "In harbor: Enter to dock", core.ColorHarbor)
	}
}

func barColor(f float64) core.Color {
	switch {
	case f < 0.25:
		return core.ColorRed
	case f < 0.5:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

func (s *Sim) renderRescue(dst *core.Screen) {
	if !s.interactor.IsAttempting() {
		return
	}
	const width = 20
	y := dst.Height()/2 + 2
	x := (dst.Width() - width - 8) / 2
	dst.DrawTextColor(x, y, "RESCUE", core.ColorSurvivor)
	dst.DrawBar(x+7, y, width, s.interactor.Progress(), core.ColorSurvivor)
}

func (s *Sim) renderToast(dst *core.Screen) {
	if s.toast.left <= 0 || s.toast.text == "" {
		return
	}
	dst.DrawTextCentered(2, s.toast.text, s.toast.color)
}

func (s *Sim) renderDebrief(dst *core.Screen) {
	d := s.debrief
	title, c := "Run Complete", core.ColorHarbor
	if d.Failed() {
		title, c = "Run Failed", core.ColorDanger
	}
	drawPanel(dst, c,
		title,
		d.Result,
		"",
		fmt.Sprintf("Rescued: %d", d.Rescued),
		fmt.Sprintf("Earned:  %d", d.Earned),
		fmt.Sprintf("Total:   %d", d.Total),
		"",
		"Enter to return to harbor",
	)
}

// drawPanel draws a centered box with one line of text per row.
func drawPanel(dst *core.Screen, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w+6, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
