package internal

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/unotools/unogen/internal/idl"
)

var (
	buildSource string
	buildDir    string
	buildOutput string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile IDL files and generate Java type stubs",
	Long: `Build compiles every .idl file under the source directory, merges the
results into a types.rdb registry and generates Java stubs with
javamaker.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildSource, "source", "s", "idl", "Directory containing .idl sources")
	buildCmd.Flags().StringVarP(&buildDir, "build-dir", "b", "build", "Scratch directory for .urd files and types.rdb")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", filepath.Join("build", "java"), "Output directory for generated .java files")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	env, err := newEnvironment(logger)
	if err != nil {
		return err
	}

	builder := idl.NewBuilder(env, idl.Options{
		SourceDir: buildSource,
		BuildDir:  buildDir,
		OutputDir: buildOutput,
		Verbose:   verbose,
		Logger:    logger,
	})
	return builder.Build(cmd.Context())
}
