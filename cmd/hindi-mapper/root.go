package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SAbotsup/hindi-mapper/internal/constants"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     constants.ServiceName,
		Short:   "Maps AniList media IDs to playable stream sources",
		Version: constants.ServiceVersion,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newResolveCommand())

	return root
}

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP mapper service",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if port != "" {
				app.cfg.Port = port
			}
			return app.Run()
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")

	return cmd
}

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <anilist-id>",
		Short: "Resolve an AniList ID to its host identifier and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.ResolveOnce(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			return nil
		},
	}
}
