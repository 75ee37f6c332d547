package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <document>",
		Short: "Open a tab document in the terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			watch, _ := cmd.Flags().GetBool("watch")
			framed, _ := cmd.Flags().GetBool("framed")
			return executeView(viewOptions{
				ConfigPath: cfgPath,
				DocPath:    args[0],
				Watch:      watch,
				Framed:     framed,
			})
		},
	}
	cmd.Flags().Bool("watch", false, "reload the document when it changes (overrides config)")
	cmd.Flags().Bool("framed", false, "draw a frame around the widget (overrides config)")
	return cmd
}

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <document>",
		Short: "Mount a document headlessly, apply interactions and print the resulting attributes",
		Long: `Mount a document without a terminal, apply interactions in the order given and
print the widget's selected value followed by every host, title and panel attribute.

Interactions:
  click:N      click title N (0-based)
  key:NAME     press up, down, left, right or any other key name
  select:N     write the selected property`,
		Example: "  tabset inspect tabs.toml --do click:2 --do key:right --do select:0",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			do, _ := cmd.Flags().GetStringArray("do")
			actions, err := parseActions(do)
			if err != nil {
				return err
			}
			return executeInspect(cmd.OutOrStdout(), args[0], actions)
		},
	}
	cmd.Flags().StringArray("do", nil, "interaction to apply (repeatable, applied in order)")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create tabset.toml and a sample tabs.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			created, err := executeInit(dir)
			for _, path := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			}
			return err
		},
	}
}
