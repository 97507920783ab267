package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/attest/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newDescribeCmd() *cobra.Command {
	var (
		format      string
		repository  string
		absentToken string
		noDedupe    bool
		refresh     bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "describe [inputs...]",
		Short: "Describe Maven dependencies from pom files, dependency lists, projects or coordinates",
		Long: `Describe reads Maven coordinates and prints one resource descriptor per dependency.

Each input is one of:
  - a pom.xml or *.pom file
  - captured output of mvn dependency:list or dependency:resolve
  - a Maven project directory (runs mvn dependency:list)
  - a coordinate literal groupId:artifactId:version[:type[:scope]]`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.DescribeOptions{
				Format:   format,
				NoDedupe: noDedupe,
				Refresh:  refresh,
				Output:   cmd.OutOrStdout(),
			}

			// Only explicitly set flags override the configuration file.
			if cmd.Flags().Changed("repository") {
				opts.Repository = &repository
			}
			if cmd.Flags().Changed("absent-token") {
				opts.AbsentToken = &absentToken
			}

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to create output file"), "path", output)
				}
				defer func() {
					_ = f.Close()
				}()
				opts.Output = f
			}

			return c.app.Describe(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, intoto or purl")
	cmd.Flags().StringVar(&repository, "repository", "", "Base repository URL for artifact URIs")
	cmd.Flags().StringVar(&absentToken, "absent-token", "", "Text rendered for absent coordinate parts in names")
	cmd.Flags().BoolVar(&noDedupe, "no-dedupe", false, "Keep structurally equal descriptors")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-resolve Maven projects instead of using cached results")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write output to a file instead of stdout")

	return cmd
}
