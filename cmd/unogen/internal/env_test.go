package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/unotools/unogen/internal/office"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv(office.OfficeHomeEnv, "")
	t.Setenv(office.OfficeBaseEnv, "")
	t.Setenv(office.SDKHomeEnv, "")
	t.Setenv(office.UREHomeEnv, "")

	cfgFile = filepath.Join(t.TempDir(), "absent.toml")
	officeHomeFlag = ""
	sdkHomeFlag = ""
	verbose = false
	envStrict = false
	t.Cleanup(func() {
		cfgFile = "unogen.toml"
		officeHomeFlag = ""
		sdkHomeFlag = ""
		verbose = false
		envStrict = false
	})
}

func TestRunEnvPrintsResolvedValues(t *testing.T) {
	resetFlags(t)
	t.Setenv(office.OfficeHomeEnv, "/opt/foo")
	t.Setenv(office.OfficeBaseEnv, "/base")
	t.Setenv(office.SDKHomeEnv, "/sdk")
	t.Setenv(office.UREHomeEnv, "/ure")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runEnv(cmd, nil); err != nil {
		t.Fatalf("runEnv: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"OFFICE_HOME=/opt/foo\n",
		"OFFICE_BASE_HOME=/base\n",
		"OO_SDK_HOME=/sdk\n",
		"OO_SDK_URE_HOME=/ure\n",
		"OO_SDK_URE_LIB_DIR=" + filepath.Join("/ure", "lib") + "\n",
		"OO_SDK_URE_BIN_DIR=" + filepath.Join("/ure", "bin") + "\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("env output missing %q, got:\n%s", want, out)
		}
	}
}

func TestRunEnvUnresolvedPrintsEmpty(t *testing.T) {
	resetFlags(t)
	t.Setenv(office.OfficeHomeEnv, "/opt/foo")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runEnv(cmd, nil); err != nil {
		t.Fatalf("runEnv: %v", err)
	}

	// SDK home cannot be resolved on a machine without an SDK install,
	// but env stays non-fatal without --strict.
	if !strings.Contains(buf.String(), "OFFICE_HOME=/opt/foo\n") {
		t.Errorf("env output missing office home, got:\n%s", buf.String())
	}
}

func TestNewEnvironmentAppliesOverrides(t *testing.T) {
	resetFlags(t)
	officeHomeFlag = t.TempDir()
	sdkHomeFlag = t.TempDir()

	env, err := newEnvironment(newLogger())
	if err != nil {
		t.Fatalf("newEnvironment: %v", err)
	}
	if got, err := env.OfficeHome(); err != nil || got != officeHomeFlag {
		t.Errorf("OfficeHome = %q, %v; want %q", got, err, officeHomeFlag)
	}
	if got, err := env.SDKHome(); err != nil || got != sdkHomeFlag {
		t.Errorf("SDKHome = %q, %v; want %q", got, err, sdkHomeFlag)
	}
}

func TestNewEnvironmentRejectsBadOverride(t *testing.T) {
	resetFlags(t)
	officeHomeFlag = filepath.Join(t.TempDir(), "missing")

	if _, err := newEnvironment(newLogger()); err == nil {
		t.Error("newEnvironment with missing override dir succeeded, want error")
	}
}

func TestNewEnvironmentReadsConfig(t *testing.T) {
	resetFlags(t)
	cfgFile = filepath.Join(t.TempDir(), "unogen.toml")
	if err := os.WriteFile(cfgFile, []byte("[office]\nhome = \"/opt/from-config\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env, err := newEnvironment(newLogger())
	if err != nil {
		t.Fatalf("newEnvironment: %v", err)
	}
	if got, err := env.OfficeHome(); err != nil || got != "/opt/from-config" {
		t.Errorf("OfficeHome = %q, %v; want %q", got, err, "/opt/from-config")
	}
}
