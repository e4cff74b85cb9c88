package cmd

import (
	"github.com/philipparndt/gocad/pkg/viewer"
	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Run the editor in a fyne window",
	Long:  "Run the editor with the fyne toolkit. Frames are drawn by the software rasterizer.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return viewer.Run(cfg, viewer.Options{
			ConfigPath: path,
			Watch:      flags.watch,
			Logger:     newLogger(),
		})
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
