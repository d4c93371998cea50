package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/unotools/unogen/internal/office"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unogen.toml")
	content := `
[office]
home = "/opt/openoffice.org3"

[sdk]
home = "/opt/openoffice.org3/sdk"
ure_home = "/opt/ure"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Office.Home != "/opt/openoffice.org3" {
		t.Errorf("Office.Home = %q", c.Office.Home)
	}
	if c.SDK.Home != "/opt/openoffice.org3/sdk" {
		t.Errorf("SDK.Home = %q", c.SDK.Home)
	}

	props := c.Properties()
	if props[office.OfficeHomeEnv] != "/opt/openoffice.org3" {
		t.Errorf("props[%s] = %q", office.OfficeHomeEnv, props[office.OfficeHomeEnv])
	}
	if props[office.UREHomeEnv] != "/opt/ure" {
		t.Errorf("props[%s] = %q", office.UREHomeEnv, props[office.UREHomeEnv])
	}
	if props[office.OfficeBaseEnv] != "" {
		t.Errorf("props[%s] = %q, want empty", office.OfficeBaseEnv, props[office.OfficeBaseEnv])
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if c.Office.Home != "" || c.SDK.Home != "" {
		t.Errorf("Load on missing file = %+v, want zero Config", c)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unogen.toml")
	if err := os.WriteFile(path, []byte("[office\nhome ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load on invalid TOML succeeded, want error")
	}
}
