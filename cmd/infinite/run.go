package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/infinite/assets"
	"github.com/oliverbestmann/infinite/audio"
	"github.com/oliverbestmann/infinite/ecs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(c *cli) *cobra.Command {
	var music string
	var width, height int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the engine core in a window",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			w := ecs.NewWorld()

			ecs.InsertResource(w, ecs.NewGameTime(c.config.Time.GameTime()))
			ecs.InsertResource(w, ecs.NewTimingStats())
			ecs.InsertResource(w, assets.NewServer(c.config.Assets.BasePath))

			engine, err := audio.New(c.config.Audio)
			if err != nil {
				return err
			}

			ecs.InsertResource(w, engine)

			if music != "" {
				if err := engine.PlayMusic(music, 2*time.Second); err != nil {
					c.log.Warn("failed to play music", zap.String("path", music), zap.Error(err))
				}
			}

			schedule := ecs.NewSchedule()
			schedule.AddSystems(
				ecs.UpdateGameTimeSystem(time.Now),
				fixedStepSystem,
				audio.UpdateSystem,
				logTimingsSystem(c.log, 5*time.Second),
			)

			ebiten.SetWindowTitle("Infinite")
			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			var options ebiten.RunGameOptions
			options.SingleThread = true

			err = ebiten.RunGameWithOptions(&game{world: w, schedule: schedule}, &options)
			if errors.Is(err, ebiten.Termination) {
				err = nil
			}

			c.log.Info("game loop finished")

			return err
		},
	}

	cmd.Flags().StringVar(&music, "music", "", "music track to play while running")
	cmd.Flags().IntVar(&width, "width", 800, "window width")
	cmd.Flags().IntVar(&height, "height", 600, "window height")

	return cmd
}

// FixedSteps counts the fixed steps executed since the start.
type FixedSteps struct {
	Count int
}

func fixedStepSystem(w *ecs.World) {
	gameTime, ok := ecs.ResourceMut[ecs.GameTime](w)
	if !ok {
		return
	}

	steps, _ := ecs.ResourceMut[FixedSteps](w)
	if steps == nil {
		ecs.InsertResource(w, FixedSteps{})
		steps, _ = ecs.ResourceMut[FixedSteps](w)
	}

	steps.Count += gameTime.FixedSteps()
}

// logTimingsSystem periodically logs the collected system timings.
func logTimingsSystem(log *zap.Logger, interval time.Duration) ecs.SystemFunc {
	timer := ecs.NewTimer(interval, ecs.TimerRepeating)

	return func(w *ecs.World) {
		gameTime, ok := ecs.Resource[ecs.GameTime](w)
		if !ok || !timer.Tick(gameTime.Delta).JustFinished() {
			return
		}

		timings, ok := ecs.Resource[ecs.TimingStats](w)
		if !ok {
			return
		}

		for _, name := range timings.SystemOrder {
			t := timings.BySystem[name]

			log.Debug("system timings",
				zap.String("system", name),
				zap.Int("runs", t.Count),
				zap.Duration("avg", t.MovingAverage),
				zap.Duration("max", t.Max),
			)
		}
	}
}

type game struct {
	world    *ecs.World
	schedule *ecs.Schedule
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if gameTime, ok := ecs.ResourceMut[ecs.GameTime](g.world); ok {
			gameTime.TogglePause()
		}
	}

	g.schedule.RunAll(g.world)

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	var text strings.Builder

	if gameTime, ok := ecs.Resource[ecs.GameTime](g.world); ok {
		_, _ = fmt.Fprintf(&text, "frame=%d elapsed=%s paused=%v\n",
			gameTime.FrameCount, gameTime.Elapsed.Truncate(time.Millisecond), gameTime.Paused)
	}

	if steps, ok := ecs.Resource[FixedSteps](g.world); ok {
		_, _ = fmt.Fprintf(&text, "fixed steps=%d\n", steps.Count)
	}

	if engine, ok := ecs.Resource[*audio.Engine](g.world); ok {
		_, _ = fmt.Fprintf(&text, "music=%s active sfx=%d\n", engine.Music().State(), engine.Sfx().ActiveCount())
	}

	if timings, ok := ecs.Resource[ecs.TimingStats](g.world); ok {
		names := slices.Clone(timings.SystemOrder)
		slices.Sort(names)

		for _, name := range names {
			t := timings.BySystem[name]
			_, _ = fmt.Fprintf(&text, "%s runs=%d avg=%.2fms\n", name, t.Count, t.MovingAverage.Seconds()*1000)
		}
	}

	ebitenutil.DebugPrint(screen, text.String())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
