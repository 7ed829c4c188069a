package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comereal/gamejamtoolkit/audio"
	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/logger"
)

func (c *cli) audioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Inspect audio clips",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "scan <dir>",
		Short: "Decode the .ogg and .wav files under dir and list their keys",
		Args:  cobra.ExactArgs(1),
		RunE:  c.audioScan,
	})
	return cmd
}

func (c *cli) audioScan(cmd *cobra.Command, args []string) error {
	db := audio.NewClipDatabase(logger.New("audio"))
	db.SetMasterVolume(c.cfg.Audio.Master)
	db.SetMusicVolume(c.cfg.Audio.Music)
	db.SetSFXVolume(c.cfg.Audio.SFX)

	n, err := audio.ScanDir(os.DirFS(args[0]), ".", config.Audio.SampleRate, db, c.log)
	if err != nil {
		return fmt.Errorf("scan %s: %w", args[0], err)
	}
	out := cmd.OutOrStdout()
	for _, kc := range db.Clips() {
		fmt.Fprintf(out, "%s\t%.2fs\n", kc.Key, kc.Clip.Length)
	}
	fmt.Fprintf(out, "%d clips, music volume %.2f, sfx volume %.2f\n", n, db.EffectiveMusic(), db.EffectiveSFX())
	return nil
}
