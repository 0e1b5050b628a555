package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"montage/internal/library"
)

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the composition library",
	}

	libraryCmd.AddCommand(newLibrarySaveCommand(ctx))
	libraryCmd.AddCommand(newLibraryListCommand(ctx))
	libraryCmd.AddCommand(newLibraryShowCommand(ctx))
	libraryCmd.AddCommand(newLibraryExportCommand(ctx))
	libraryCmd.AddCommand(newLibraryDeleteCommand(ctx))
	libraryCmd.AddCommand(newLibraryRenameCommand(ctx))

	return libraryCmd
}

func newLibrarySaveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save <composition.json> [name]",
		Short: "Store a composition document in the library",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadComposition(args[0])
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			if strings.TrimSpace(name) == "" {
				name = library.DeriveName(args[0])
			}
			return ctx.withStore(cmd.Context(), func(store *library.Store) error {
				comp, err := store.Save(cmd.Context(), name, snap)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved composition %q (%s)\n", comp.Name, comp.ID)
				return nil
			})
		},
	}
}

func newLibraryListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored compositions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(store *library.Store) error {
				comps, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, comps)
				}
				if len(comps) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Library is empty")
					return nil
				}
				rows := make([][]string, 0, len(comps))
				for _, comp := range comps {
					rows = append(rows, []string{
						comp.Name,
						fmt.Sprintf("%d", comp.Layers),
						comp.UpdatedAt.Local().Format("2006-01-02 15:04"),
						comp.ID,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Name", "Layers", "Updated", "ID"},
					rows,
					1,
				))
				return nil
			})
		},
	}
}

func newLibraryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name-or-id>",
		Short: "Show a stored composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(store *library.Store) error {
				comp, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				snap, err := comp.Snapshot()
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, comp)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Name:    %s\n", comp.Name)
				fmt.Fprintf(out, "ID:      %s\n", comp.ID)
				fmt.Fprintf(out, "Created: %s\n", comp.CreatedAt.Local().Format("2006-01-02 15:04:05"))
				fmt.Fprintf(out, "Updated: %s\n", comp.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Type", "Source / Content", "Start", "Duration", "Details"},
					layerRows(snap.Layers()),
					0,
				))
				return nil
			})
		},
	}
}

func newLibraryExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <name-or-id>",
		Short: "Write a stored composition document to a file or stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(store *library.Store) error {
				comp, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				document := comp.Document
				if !strings.HasSuffix(document, "\n") {
					document += "\n"
				}
				target := strings.TrimSpace(outputPath)
				if target == "" || target == "-" {
					_, err := fmt.Fprint(cmd.OutOrStdout(), document)
					return err
				}
				return writeTextFile(cmd, target, document, "Wrote composition to %s\n")
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (defaults to stdout)")
	return cmd
}

func newLibraryDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name-or-id>",
		Short: "Remove a composition from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(store *library.Store) error {
				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted composition %q\n", args[0])
				return nil
			})
		},
	}
}

func newLibraryRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name-or-id> <new-name>",
		Short: "Rename a stored composition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(store *library.Store) error {
				comp, err := store.Rename(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed composition to %q (%s)\n", comp.Name, comp.ID)
				return nil
			})
		},
	}
}
