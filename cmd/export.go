package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/phrasecheck/constants"
	"github.com/jsphweid/phrasecheck/midi"
	"github.com/jsphweid/phrasecheck/pitch"
	"github.com/jsphweid/phrasecheck/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <OUT_PATH>/<uuid>.mid)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export PHRASE",
	Short: "Writes a phrase to a MIDI file",
	Long:  `Writes a phrase such as "C4,E4,G4" to a standard MIDI file, one quarter note per note.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := export(args[0], exportOut)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func export(phraseText string, path string) (string, error) {
	phrase, err := pitch.ParsePhrase(phraseText)
	if err != nil {
		return "", err
	}

	if path == "" {
		dir := constants.GetOutDir()
		if err := util.EnsureDir(dir); err != nil {
			return "", fmt.Errorf("Could not create output dir: %w", err)
		}
		path = filepath.Join(dir, uuid.New().String()+".mid")
	}

	if err := midi.WritePhraseFile(path, phrase); err != nil {
		return "", err
	}
	logger.Info("Exported phrase", zap.String("path", path), zap.Int("notes", len(phrase)))
	return path, nil
}
