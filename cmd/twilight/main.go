package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/twilight-wallpaper/twilight/internal/config"
	"github.com/twilight-wallpaper/twilight/internal/game"
	"github.com/twilight-wallpaper/twilight/internal/logging"
	"github.com/twilight-wallpaper/twilight/internal/render"
	"github.com/twilight-wallpaper/twilight/internal/sky"
)

const title = "Twilight"

// Game is the Ebitengine game struct. It maps input and window events onto
// the wallpaper and presents whatever the wallpaper last painted.
type Game struct {
	wallpaper *game.Wallpaper
	outside   sky.Viewport
}

func NewGame(cfg config.Config, logger *log.Logger) *Game {
	var rng sky.RandSource = sky.NewWallclockSource()
	if cfg.FixedStars {
		rng = sky.NewSeededSource(cfg.Seed)
	}

	gpu := cfg.GPU()
	newSurface := func(vp sky.Viewport) game.Target {
		return render.NewSurface(gpu, vp.Width, vp.Height)
	}

	return &Game{
		wallpaper: game.New(sky.NewRenderer(rng), newSurface, logger),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		g.wallpaper.Quit()
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyR) {
		g.wallpaper.Regenerate()
	}
	if g.wallpaper.State() == game.StateQuit {
		return ebiten.Termination
	}

	g.wallpaper.Resize(g.outside)
	g.wallpaper.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s, ok := g.wallpaper.Target().(render.Surface)
	if !ok {
		return
	}
	screen.DrawImage(s.Image(), nil)
}

// Layout keeps one logical pixel per screen pixel; a new outside size is
// picked up by the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outside = sky.Viewport{Width: outsideWidth, Height: outsideHeight}
	return outsideWidth, outsideHeight
}

func main() {
	logger := logging.New(os.Stderr, log.InfoLevel)

	path, err := config.Path()
	if err != nil {
		logger.Fatal("locate config", "err", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	logger.SetLevel(cfg.Level())

	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(sky.FrameRate)

	logger.Info("starting",
		"display", fmt.Sprintf("%dx%d", w, h),
		"renderer", cfg.Renderer,
		"fixed_stars", cfg.FixedStars,
		"config", path)

	g := NewGame(cfg, logger)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", "err", err)
	}
	g.wallpaper.Quit()
}
