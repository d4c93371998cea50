package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unotools/unogen/internal/office"
)

var envStrict bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the resolved installation environment",
	Long: `Env prints the office and SDK directories in the NAME=value form used
by the SDK's setsdkenv scripts. Unresolved entries are printed empty
unless --strict is given.`,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().BoolVar(&envStrict, "strict", false, "Fail when a directory cannot be resolved")
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(newLogger())
	if err != nil {
		return err
	}

	entries := []struct {
		name string
		get  func() (string, error)
	}{
		{office.OfficeHomeEnv, env.OfficeHome},
		{office.OfficeBaseEnv, env.OfficeBaseHome},
		{office.SDKHomeEnv, env.SDKHome},
		{office.UREHomeEnv, env.UREHome},
		{office.URELibDirEnv, env.URELibDir},
		{office.UREBinDirEnv, env.UREBinDir},
	}
	for _, ent := range entries {
		v, err := ent.get()
		if err != nil {
			if envStrict {
				return err
			}
			v = ""
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", ent.name, v)
	}
	return nil
}
