package internal

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/unotools/unogen/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "unogen",
	Short: "unogen generates Java stubs from OpenOffice UNO IDL",
	Long: `unogen resolves the OpenOffice and SDK installation directories and
drives the SDK's idlc, regmerge and javamaker tools to turn UNO IDL
definitions into Java type stubs.`,
}

var (
	cfgFile        string
	officeHomeFlag string
	sdkHomeFlag    string
	verbose        bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "Path to the unogen.toml config file")
	rootCmd.PersistentFlags().StringVar(&officeHomeFlag, "office-home", "", "Office installation root (overrides discovery)")
	rootCmd.PersistentFlags().StringVar(&sdkHomeFlag, "sdk-home", "", "SDK installation root (overrides discovery)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
