// Package cli wires the scan engine to a command line front-end.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// flags collects the raw flag values before they are turned into
// scan.Options.
type flags struct {
	long     bool
	human    bool
	all      bool
	parallel bool
	sortSize bool
	name     string
	fullPath bool
	times    bool
	json     bool
	debug    bool
	rmPath   string
	rmForce  bool
}

// NewCommand builds the duls root command.
func NewCommand(version string) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "duls [flags] [path]",
		Short: "List a directory with recursively aggregated sizes",
		Long: heredoc.Doc(`
			duls lists the immediate children of a directory and annotates each
			with its total size: files contribute their length, directories the
			recursive sum of everything beneath them.

			Unreadable files and subtrees are skipped with a diagnostic instead
			of failing the listing; only an unreadable root is an error.

			Without -l only the sorted child names are printed.
		`),
		Example: heredoc.Doc(`
			# long listing of the current directory, human-readable, largest first
			duls -lHS

			# parallel size aggregation for a large tree
			duls -lHp /var

			# report every directory under ~/src whose name contains "cache"
			duls -lH -n cache ~/src

			# delete a file, clearing the read-only bit if needed
			duls --rm build/stale.bin --force
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.rmPath != "" {
				return runDelete(f.rmPath, f.rmForce)
			}
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return run(root, f)
		},
	}

	cmd.Flags().BoolVarP(&f.long, "long", "l", false, "Long format: gather sizes and metadata per entry")
	cmd.Flags().BoolVarP(&f.human, "human-readable", "H", false, "Print sizes on the IEC ladder (KiB, MiB, ...)")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "Include entries whose name starts with a dot")
	cmd.Flags().BoolVarP(&f.parallel, "parallel", "p", false, "Sum directory sizes with a parallel walk")
	cmd.Flags().BoolVarP(&f.sortSize, "sort", "S", false, "Sort entries by size, largest first")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Only report directories whose name contains this substring")
	cmd.Flags().BoolVarP(&f.fullPath, "full-path", "F", false, "Display the canonical path instead of the base name")
	cmd.Flags().BoolVarP(&f.times, "times", "T", false, "Include creation times where the platform reports them")
	cmd.Flags().BoolVar(&f.json, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Enable debug diagnostics")
	cmd.Flags().StringVar(&f.rmPath, "rm", "", "Delete the given file or directory instead of listing")
	cmd.Flags().BoolVar(&f.rmForce, "force", false, "With --rm, delete read-only targets as well")
	cmd.Flags().SortFlags = false

	return cmd
}

// Execute runs the CLI against os.Args.
func Execute(version string) error {
	return NewCommand(version).Execute()
}
