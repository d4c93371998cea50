// Package office locates an OpenOffice installation and its SDK on
// disk. Resolution mirrors the setsdkenv scripts shipped with the SDK:
// an explicit environment variable wins, then a configuration property
// of the same name, then a per-OS list of well-known install locations.
package office

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/unotools/unogen/internal/platform"
)

// Environment variable names, as defined by the SDK's setsdkenv
// scripts. The same names double as configuration property keys.
const (
	OfficeHomeEnv = "OFFICE_HOME"
	OfficeBaseEnv = "OFFICE_BASE_HOME"
	SDKHomeEnv    = "OO_SDK_HOME"
	UREHomeEnv    = "OO_SDK_URE_HOME"
	URELibDirEnv  = "OO_SDK_URE_LIB_DIR"
	UREBinDirEnv  = "OO_SDK_URE_BIN_DIR"
)

// ErrNotResolved reports that a directory could not be located by any
// discovery source and no explicit override was given.
var ErrNotResolved = errors.New("directory not resolved")

// dir is a resolved-or-not directory value. The zero value is
// unresolved, so an empty path can never be mistaken for a valid one.
type dir struct {
	path string
	ok   bool
}

// Environment resolves and caches the four installation directories:
// the office root, its basis directory, the SDK root and the URE root.
// A value, once resolved, is never re-resolved; only the explicit
// setters replace it. All methods are safe for concurrent use.
type Environment struct {
	mu       sync.Mutex
	platform platform.Platform
	getenv   func(string) string
	props    map[string]string
	logger   *log.Logger

	officeHome     dir
	officeBaseHome dir
	sdkHome        dir
	sdkUreHome     dir
}

// Option configures an Environment before the initial discovery runs.
type Option func(*Environment)

// WithPlatform overrides the detected host platform.
func WithPlatform(p platform.Platform) Option {
	return func(e *Environment) { e.platform = p }
}

// WithGetenv replaces os.Getenv as the environment-variable source.
func WithGetenv(getenv func(string) string) Option {
	return func(e *Environment) { e.getenv = getenv }
}

// WithProperties supplies configuration properties consulted when the
// environment variable of the same name is unset. Empty values are
// ignored.
func WithProperties(props map[string]string) Option {
	return func(e *Environment) {
		for k, v := range props {
			if v != "" {
				e.props[k] = v
			}
		}
	}
}

// WithLogger routes discovery diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Environment) { e.logger = l }
}

// New builds an Environment and runs the initial discovery for the two
// home directories. A failed guess is not an error: it is logged at
// debug level and the value stays unresolved until a setter supplies
// it, so the failure surfaces only when a getter actually needs the
// value.
func New(opts ...Option) *Environment {
	e := &Environment{
		platform: platform.Detect(),
		getenv:   os.Getenv,
		props:    make(map[string]string),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.officeHome = e.guessOfficeHome()
	e.sdkHome = e.guessSDKHome()
	e.officeBaseHome = e.fromEnv(OfficeBaseEnv)
	e.sdkUreHome = e.fromEnv(UREHomeEnv)
	return e
}

// Platform returns the platform the Environment resolves paths for.
func (e *Environment) Platform() platform.Platform {
	return e.platform
}

// OfficeHome returns the office installation root (OFFICE_HOME).
func (e *Environment) OfficeHome() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.officeHomeLocked()
}

// SetOfficeHome overrides the office installation root. path must be
// an existing directory; an invalid override leaves the cached value
// untouched.
func (e *Environment) SetOfficeHome(path string) error {
	if !isDir(path) {
		return fmt.Errorf("set office home: %s is not a directory", path)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.officeHome = dir{path: path, ok: true}
	return nil
}

// OfficeBaseHome returns the basis directory of the office
// installation (OFFICE_BASE_HOME), deriving and caching it from
// OfficeHome on first call.
func (e *Environment) OfficeBaseHome() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.officeBaseHomeLocked()
}

// SDKHome returns the SDK installation root (OO_SDK_HOME).
func (e *Environment) SDKHome() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sdkHomeLocked()
}

// SetSDKHome overrides the SDK installation root. path must be an
// existing directory; an invalid override leaves the cached value
// untouched.
func (e *Environment) SetSDKHome(path string) error {
	if !isDir(path) {
		return fmt.Errorf("set SDK home: %s is not a directory", path)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sdkHome = dir{path: path, ok: true}
	return nil
}

// UREHome returns the Universal Runtime Environment directory
// (OO_SDK_URE_HOME). On Windows the URE lives in the SDK itself;
// elsewhere it is the ure-link directory under OfficeBaseHome.
func (e *Environment) UREHome() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sdkUreHomeLocked()
}

// URELibDir returns the shared-library directory of the URE. On macOS
// this is the directory to put on DYLD_LIBRARY_PATH.
func (e *Environment) URELibDir() (string, error) {
	ure, err := e.UREHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(ure, "lib"), nil
}

// UREBinDir returns the binary directory of the URE.
func (e *Environment) UREBinDir() (string, error) {
	ure, err := e.UREHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(ure, "bin"), nil
}

func (e *Environment) officeHomeLocked() (string, error) {
	if !e.officeHome.ok {
		return "", fmt.Errorf("office home: set %s or pass an explicit override: %w", OfficeHomeEnv, ErrNotResolved)
	}
	return e.officeHome.path, nil
}

func (e *Environment) sdkHomeLocked() (string, error) {
	if !e.sdkHome.ok {
		return "", fmt.Errorf("SDK home: set %s or pass an explicit override: %w", SDKHomeEnv, ErrNotResolved)
	}
	return e.sdkHome.path, nil
}

func (e *Environment) officeBaseHomeLocked() (string, error) {
	if e.officeBaseHome.ok {
		return e.officeBaseHome.path, nil
	}
	home, err := e.officeHomeLocked()
	if err != nil {
		return "", err
	}
	sub, ok := basisSubdir[e.platform]
	if !ok {
		sub = defaultBasisSubdir
	}
	e.officeBaseHome = dir{path: filepath.Join(home, sub), ok: true}
	return e.officeBaseHome.path, nil
}

func (e *Environment) sdkUreHomeLocked() (string, error) {
	if e.sdkUreHome.ok {
		return e.sdkUreHome.path, nil
	}
	if e.platform == platform.Windows {
		home, err := e.sdkHomeLocked()
		if err != nil {
			return "", err
		}
		e.sdkUreHome = dir{path: home, ok: true}
	} else {
		base, err := e.officeBaseHomeLocked()
		if err != nil {
			return "", err
		}
		e.sdkUreHome = dir{path: filepath.Join(base, ureSubdir), ok: true}
	}
	return e.sdkUreHome.path, nil
}

func (e *Environment) guessOfficeHome() dir {
	if v := e.lookup(OfficeHomeEnv); v != "" {
		return dir{path: v, ok: true}
	}
	candidates := append(platform.RegistryInstallPaths(), officeCandidates[e.platform]...)
	if d := scan(candidates); d != "" {
		return dir{path: d, ok: true}
	}
	e.logger.Debug("office home not found, configure it explicitly", "env", OfficeHomeEnv)
	return dir{}
}

func (e *Environment) guessSDKHome() dir {
	if v := e.lookup(SDKHomeEnv); v != "" {
		return dir{path: v, ok: true}
	}
	if d := scan(sdkCandidates[e.platform]); d != "" {
		return dir{path: d, ok: true}
	}
	e.logger.Debug("SDK home not found, configure it explicitly", "env", SDKHomeEnv)
	return dir{}
}

// lookup reads name from the environment, falling back to the
// configuration properties. The value is used as-is: an explicitly
// configured path is trusted without an existence check.
func (e *Environment) lookup(name string) string {
	if v := e.getenv(name); v != "" {
		return v
	}
	return e.props[name]
}

func (e *Environment) fromEnv(name string) dir {
	if v := e.lookup(name); v != "" {
		return dir{path: v, ok: true}
	}
	return dir{}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
