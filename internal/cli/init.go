package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Harshal279/chatbot/internal/config"
)

func newInitCmd(e *env) *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Init writes ` + config.DefaultFile + ` (or the --path file) with every setting at
its default value, ready to edit. An existing file is left alone unless
--force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exists, err := afero.Exists(e.fs, path)
			if err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteConfig(e.fs, path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", config.DefaultFile, "config file to write")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
