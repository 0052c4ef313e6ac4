package game

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/carlosperfil/pacman/internal/entities"
)

// Initials on the leaderboard, arcade style.
const nameLen = 3

// How many history rows the menu shows.
const recentShown = 3

// AppConfig wires the app's collaborators. Scores and History may be
// nil; the game then runs without that persistence.
type AppConfig struct {
	Session  *Session
	Settings Settings
	Audio    *AudioManager
	Scores   *ScoreStore
	History  *HistoryStore
}

// App glues the session to Ebiten: input, audio, persistence, drawing.
// Game rules live in Level and Session; the app only translates keys
// into session calls and events into side effects.
type App struct {
	session  *Session
	settings Settings
	audio    *AudioManager
	scores   *ScoreStore
	history  *HistoryStore

	scale      float64
	fullscreen bool
	debug      bool
	quit       bool

	enteringName bool
	nameBuf      string
	finalScore   int
	startedAt    time.Time

	board  []ScoreEntry    // cached leaderboard
	recent []SessionRecord // cached history rows
}

func NewApp(cfg AppConfig) *App {
	a := &App{
		session:  cfg.Session,
		settings: cfg.Settings,
		audio:    cfg.Audio,
		scores:   cfg.Scores,
		history:  cfg.History,
	}

	// Scale the native board to fit within ~75% of the display
	nativeW, nativeH := a.session.CurrentMap().PixelSize()
	sw, sh := ebiten.ScreenSizeInFullscreen()
	fit := 0.75
	scaleW := float64(sw) * fit / float64(nativeW)
	scaleH := float64(sh) * fit / float64(nativeH)
	a.scale = math.Min(scaleW, scaleH)
	if a.scale <= 0 || math.IsNaN(a.scale) || math.IsInf(a.scale, 0) {
		a.scale = 1.0
	}

	a.refreshBoards()
	return a
}

func (a *App) ScreenWidth() int {
	w, _ := a.session.CurrentMap().PixelSize()
	return int(float64(w) * a.scale)
}

func (a *App) ScreenHeight() int {
	_, h := a.session.CurrentMap().PixelSize()
	return int(float64(h) * a.scale)
}

func (a *App) Update() error {
	a.audio.Advance()
	a.handleInput()
	if a.quit {
		return ebiten.Termination
	}
	if a.enteringName {
		// Frozen on the end screen while typing initials
		return nil
	}

	for _, ev := range a.session.Tick() {
		a.audio.HandleEvent(ev)
		switch ev.Type {
		case EventGameOver:
			a.finishCampaign(OutcomeGameOver)
		case EventVictory:
			a.finishCampaign(OutcomeVictory)
		}
	}
	return nil
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.ScreenWidth(), a.ScreenHeight()
}

func (a *App) handleInput() {
	if a.enteringName {
		a.handleNameEntry()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.fullscreen = !a.fullscreen
		ebiten.SetFullscreen(a.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.debug = !a.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.audio.SetMuted(!a.audio.Muted())
	}

	switch a.session.Phase() {
	case PhaseMenu:
		if confirmPressed() {
			a.audio.PlayMenuSelect()
			a.session.Confirm()
			if a.session.Phase() == PhasePlaying {
				a.startedAt = time.Now()
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			a.quit = true
		}
	case PhasePlaying, PhasePaused:
		a.readPlayerDir()
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.session.TogglePause()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			a.abandonRun()
		}
	case PhaseIntermission:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			a.abandonRun()
		}
	case PhaseGameOver, PhaseVictory:
		if confirmPressed() {
			a.audio.PlayMenuSelect()
			a.session.Confirm()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			a.quit = true
		}
	}
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPEnter)
}

// Held arrows queue the desired direction; the level applies it at the
// next open cell center.
func (a *App) readPlayerDir() {
	lv := a.session.Level()
	if lv == nil {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		lv.Player.DesiredDir = entities.DirUp
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		lv.Player.DesiredDir = entities.DirDown
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		lv.Player.DesiredDir = entities.DirLeft
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		lv.Player.DesiredDir = entities.DirRight
	}
}

func (a *App) handleNameEntry() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if len(a.nameBuf) >= nameLen {
			break
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			a.nameBuf += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(a.nameBuf) > 0 {
		a.nameBuf = a.nameBuf[:len(a.nameBuf)-1]
	}
	if confirmPressed() && a.nameBuf != "" {
		if _, err := a.scores.Submit(a.nameBuf, a.finalScore); err != nil {
			log.Printf("scores: %v", err)
		}
		a.enteringName = false
		a.refreshBoards()
	}
}

func (a *App) abandonRun() {
	a.recordResult(OutcomeQuit)
	a.session.Abandon()
}

func (a *App) finishCampaign(outcome Outcome) {
	a.recordResult(outcome)
	a.finalScore = a.session.Score()
	if a.scores != nil && a.scores.Qualifies(a.finalScore) {
		a.enteringName = true
		a.nameBuf = ""
	}
	a.refreshBoards()
}

func (a *App) recordResult(outcome Outcome) {
	if a.history == nil {
		return
	}
	rec := SessionRecord{
		StartedAt:  a.startedAt,
		EndedAt:    time.Now(),
		MapsPlayed: a.session.LevelIndex() + 1,
		LastMap:    a.session.CurrentMap().Name,
		Score:      a.session.Score(),
		Outcome:    outcome,
	}
	if err := a.history.Record(rec); err != nil {
		log.Printf("history: %v", err)
	}
}

func (a *App) refreshBoards() {
	if a.scores != nil {
		if list, err := a.scores.Load(); err == nil {
			a.board = list
		} else {
			log.Printf("scores: %v", err)
		}
	}
	if a.history != nil {
		if recs, err := a.history.Recent(recentShown); err == nil {
			a.recent = recs
		} else {
			log.Printf("history: %v", err)
		}
	}
}
