package main

import (
	"time"

	"github.com/oliverbestmann/infinite/audio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPlayCmd(c *cli) *cobra.Command {
	var duration, fade time.Duration
	var sfx bool

	cmd := &cobra.Command{
		Use:   "play <file>",
		Short: "Play a music track or sound effect through the audio engine",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := audio.New(c.config.Audio)
			if err != nil {
				return err
			}

			path := args[0]

			if sfx {
				err = engine.PlaySfx(path)
			} else {
				err = engine.PlayMusic(path, fade)
			}

			if err != nil {
				return err
			}

			c.log.Info("playing",
				zap.String("path", path),
				zap.Duration("duration", duration),
				zap.Bool("sfx", sfx),
			)

			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()

			deadline := time.After(duration)

			for {
				select {
				case <-ticker.C:
					engine.Update()

				case <-deadline:
					engine.StopMusic(fade)

					// give the fade out some time to finish
					time.Sleep(fade)
					return nil
				}
			}
		},
	}

	cmd.Flags().DurationVarP(&duration, "duration", "d", 10*time.Second, "how long to play")
	cmd.Flags().DurationVar(&fade, "fade", time.Second, "fade in and fade out duration")
	cmd.Flags().BoolVar(&sfx, "sfx", false, "play as a one shot sound effect")

	return cmd
}
