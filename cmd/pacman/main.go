package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/carlosperfil/pacman/internal/game"
	"github.com/carlosperfil/pacman/internal/maze"
)

func main() {
	settingsPath := flag.String("settings", "settings.yaml", "settings file")
	mapsDir := flag.String("maps", "", "map directory (overrides settings)")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	settings, err := game.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	dir := settings.MapsDir
	if *mapsDir != "" {
		dir = *mapsDir
	}
	maps, err := maze.AvailableMaps(dir)
	if err != nil {
		if *mapsDir != "" {
			log.Fatalf("maps: %v", err)
		}
		log.Printf("maps: %v (using built-in board)", err)
		maps = []*maze.Map{maze.DefaultMap()}
	}

	dataDir, err := game.DataDir(settings.DataDir)
	if err != nil {
		log.Fatalf("data dir: %v", err)
	}
	scores := game.NewScoreStore(dataDir)
	history, err := game.OpenHistory(game.HistoryPath(dataDir))
	if err != nil {
		// The game runs fine without its session log
		log.Printf("history: %v", err)
		history = nil
	} else {
		defer history.Close()
	}

	audio := game.NewAudioManager(settings.Audio)
	if *mute {
		audio.SetMuted(true)
	}

	session := game.NewSession(maps, settings.PathHeuristic(), settings.Lives)
	app := game.NewApp(game.AppConfig{
		Session:  session,
		Settings: settings,
		Audio:    audio,
		Scores:   scores,
		History:  history,
	})

	ebiten.SetWindowTitle("Pacman (Go + Ebiten)")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(app.ScreenWidth(), app.ScreenHeight())
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
