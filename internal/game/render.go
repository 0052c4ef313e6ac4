package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/carlosperfil/pacman/internal/entities"
)

// A vulnerable ghost flashes white over its last two seconds.
const (
	vulnerableFlashTicks = 120
	flashPeriod          = 15
)

var (
	playerColor     = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	vulnerableColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	flashColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	eyeColor        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bannerColor     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	hintColor       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	powerColor      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

var ghostColors = [...]color.RGBA{
	entities.PersonalityChaser:   {R: 255, G: 0, B: 0, A: 255},
	entities.PersonalityAmbusher: {R: 255, G: 128, B: 255, A: 255},
	entities.PersonalityFlanker:  {R: 0, G: 191, B: 255, A: 255},
	entities.PersonalityWanderer: {R: 255, G: 128, B: 0, A: 255},
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Offscreen image at native resolution, scaled up at the end
	nativeW, nativeH := a.session.CurrentMap().PixelSize()
	off := ebiten.NewImage(nativeW, nativeH)

	if a.session.Phase() == PhaseMenu {
		a.drawMenu(off)
	} else {
		a.drawLevel(off)
		a.drawOverlay(off)
	}
	if a.debug {
		a.drawDebug(off)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.scale, a.scale)
	screen.DrawImage(off, op)
}

func (a *App) drawLevel(dst *ebiten.Image) {
	lv := a.session.Level()
	if lv == nil {
		return
	}
	lv.Map.Draw(dst)

	r := float32(lv.Map.CellSize/2 - 2)
	vector.DrawFilledCircle(dst, float32(lv.Player.Pos.X), float32(lv.Player.Pos.Y), r, playerColor, true)
	for _, g := range lv.Ghosts {
		drawGhost(dst, g, r, lv.Tick)
	}
	a.drawHUD(dst, lv)
}

func drawGhost(dst *ebiten.Image, g *entities.Ghost, r float32, tick int) {
	x := float32(g.Pos.X)
	y := float32(g.Pos.Y)
	switch g.State {
	case entities.GhostReturning:
		// Only the eyes fly home
		eye := r / 3
		vector.DrawFilledCircle(dst, x-eye, y, eye, eyeColor, true)
		vector.DrawFilledCircle(dst, x+eye, y, eye, eyeColor, true)
	case entities.GhostVulnerable:
		c := vulnerableColor
		if g.VulnerableTicksLeft() < vulnerableFlashTicks && (tick/flashPeriod)%2 == 0 {
			c = flashColor
		}
		vector.DrawFilledCircle(dst, x, y, r, c, true)
	default:
		vector.DrawFilledCircle(dst, x, y, r, ghostColors[g.Personality], true)
	}
}

func (a *App) drawHUD(dst *ebiten.Image, lv *Level) {
	score := a.session.Score()
	high := score
	if len(a.board) > 0 && a.board[0].Score > high {
		high = a.board[0].Score
	}
	line := fmt.Sprintf("Score: %d  High: %d  Lives: %d  Level: %d/%d",
		score, high, lv.Player.Lives, a.session.LevelIndex()+1, a.session.LevelCount())
	text.Draw(dst, line, basicfont.Face7x13, 4, 12, color.White)

	if lv.Player.Powered() {
		w, h := lv.Map.PixelSize()
		msg := fmt.Sprintf("Power: %.1fs", float64(lv.Player.PowerTicks)/updatesPerSecond)
		text.Draw(dst, msg, basicfont.Face7x13, w-textWidth(msg)-4, h-4, powerColor)
	}
}

func (a *App) drawMenu(dst *ebiten.Image) {
	h := dst.Bounds().Dy()
	y := h / 5
	drawCentered(dst, "P A C M A N", y, bannerColor)
	y += 28
	drawCentered(dst, fmt.Sprintf("%d maps loaded", a.session.LevelCount()), y, color.White)
	y += 14
	drawCentered(dst, "Enter to start, Q to quit", y, color.White)
	y += 28

	if len(a.board) > 0 {
		drawCentered(dst, "High Scores", y, bannerColor)
		y += 14
		for i, e := range a.board {
			if i >= 5 {
				break
			}
			drawCentered(dst, fmt.Sprintf("%2d. %-3s %6d", i+1, e.Name, e.Score), y, color.White)
			y += 14
		}
		y += 14
	}

	if len(a.recent) > 0 {
		drawCentered(dst, "Recent Games", y, bannerColor)
		y += 14
		for _, r := range a.recent {
			line := fmt.Sprintf("%-9s %6d  %d map(s)", r.Outcome, r.Score, r.MapsPlayed)
			drawCentered(dst, line, y, hintColor)
			y += 14
		}
	}
}

func (a *App) drawOverlay(dst *ebiten.Image) {
	mid := dst.Bounds().Dy() / 2

	switch a.session.Phase() {
	case PhasePaused:
		drawCentered(dst, "PAUSED", mid, bannerColor)
		drawCentered(dst, "Space to resume, Esc for menu", mid+14, hintColor)
	case PhaseIntermission:
		drawCentered(dst, "LEVEL CLEAR", mid, bannerColor)
		drawCentered(dst, fmt.Sprintf("Level %d incoming", a.session.LevelIndex()+2), mid+14, color.White)
	case PhaseGameOver:
		drawCentered(dst, "GAME OVER", mid, bannerColor)
		a.drawEndScreen(dst, mid+14)
	case PhaseVictory:
		drawCentered(dst, "YOU WIN!", mid, bannerColor)
		a.drawEndScreen(dst, mid+14)
	}
}

func (a *App) drawEndScreen(dst *ebiten.Image, y int) {
	drawCentered(dst, fmt.Sprintf("Final score: %d", a.finalScore), y, color.White)
	y += 14
	if a.enteringName {
		drawCentered(dst, "New high score! Initials: "+a.nameBuf+"_", y, flashColor)
	} else {
		drawCentered(dst, "Enter for menu, Q to quit", y, hintColor)
	}
}

func (a *App) drawDebug(dst *ebiten.Image) {
	msg := fmt.Sprintf("tps %.0f  phase %v", ebiten.ActualTPS(), a.session.Phase())
	if lv := a.session.Level(); lv != nil {
		msg += fmt.Sprintf("  tick %d  pellets %d", lv.Tick, lv.Map.PelletsRemaining())
		for i, g := range lv.Ghosts {
			msg += fmt.Sprintf("\nghost %d %-10v path %d", i, g.State, g.PathLen())
		}
	}
	ebitenutil.DebugPrintAt(dst, msg, 4, 16)
}

// basicfont.Face7x13 advances 7px per glyph, close enough to center
// text without measuring.
func textWidth(s string) int { return len(s) * 7 }

func drawCentered(dst *ebiten.Image, s string, y int, c color.Color) {
	w := dst.Bounds().Dx()
	text.Draw(dst, s, basicfont.Face7x13, (w-textWidth(s))/2, y, c)
}
