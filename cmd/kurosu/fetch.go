package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/japaniel/kurosu/pkg/dictionary"
)

func (a *app) fetchJMdictCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "fetch-jmdict",
		Short: "Download the JMdict-simplified dictionary if it is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			override(cmd, "path", &a.cfg.Stems.JMdictPath, path)
			dst := a.cfg.Stems.JMdictPath
			if err := dictionary.NewDownloader(a.logger).Ensure(cmd.Context(), dst); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dictionary ready at %s\n", dst)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "destination file (overrides stems.jmdict_path)")
	return cmd
}
