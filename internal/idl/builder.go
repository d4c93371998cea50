// Package idl builds Java type stubs from UNO IDL definitions using
// the SDK tools located by the office environment.
package idl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/unotools/unogen/internal/office"
	"github.com/unotools/unogen/internal/platform"
	"github.com/unotools/unogen/x/unoidl"
)

// Options configure a Builder.
type Options struct {
	SourceDir string // directory searched recursively for .idl files
	BuildDir  string // scratch dir for .urd output and types.rdb
	OutputDir string // destination for generated .java files
	Verbose   bool   // mirror SDK tool output instead of discarding it
	Logger    *log.Logger
}

// Builder drives the idlc / regmerge / javamaker pipeline.
type Builder struct {
	env     *office.Environment
	source  string
	build   string
	output  string
	verbose bool
	logger  *log.Logger
}

// NewBuilder returns a Builder resolving tool locations through env.
func NewBuilder(env *office.Environment, opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{
		env:     env,
		source:  opts.SourceDir,
		build:   opts.BuildDir,
		output:  opts.OutputDir,
		verbose: opts.Verbose,
		logger:  logger,
	}
}

// Build compiles every .idl file under the source directory, merges
// the results into <buildDir>/types.rdb and generates Java stubs into
// the output directory. A missing or empty source directory is a
// no-op, not an error.
func (b *Builder) Build(ctx context.Context) error {
	idlFiles, err := b.findIDLFiles()
	if err != nil {
		return err
	}
	if len(idlFiles) == 0 {
		b.logger.Info("no IDL files found, nothing to do", "dir", b.source)
		return nil
	}

	packages, err := b.Packages()
	if err != nil {
		return err
	}
	b.logger.Debug("building IDL", "files", len(idlFiles), "packages", packages)

	tc, err := b.toolchain()
	if err != nil {
		return err
	}
	tc.Include(b.source)

	urdDir := filepath.Join(b.build, "urd")
	if err := tc.Compile(ctx, urdDir, idlFiles...); err != nil {
		return fmt.Errorf("compile IDL: %w", err)
	}

	urdFiles, err := filepath.Glob(filepath.Join(urdDir, "*.urd"))
	if err != nil {
		return err
	}
	if len(urdFiles) == 0 {
		return fmt.Errorf("idlc produced no .urd files in %s", urdDir)
	}

	typesRdb := filepath.Join(b.build, "types.rdb")
	if err := tc.Merge(ctx, typesRdb, urdFiles...); err != nil {
		return fmt.Errorf("merge registry: %w", err)
	}

	refs, err := b.referenceRegistries()
	if err != nil {
		return err
	}
	if err := tc.GenerateJava(ctx, b.output, typesRdb, refs...); err != nil {
		return fmt.Errorf("generate Java stubs: %w", err)
	}

	b.logger.Info("generated Java stubs", "registry", typesRdb, "output", b.output)
	return nil
}

// sdkToolSubdirs lists where SDK releases place their tools relative
// to the SDK root, probed in order: modern SDKs use bin/, older
// releases a per-OS directory.
var sdkToolSubdirs = map[platform.Platform][]string{
	platform.Linux:   {"bin", "linux/bin"},
	platform.Darwin:  {"bin", "macosx/bin"},
	platform.Windows: {"bin", "windows/bin"},
	platform.Other:   {"bin"},
}

// toolchain builds the tool wrapper from the resolved SDK directories.
// Tool output is discarded unless the Builder is verbose; tool errors
// always come through.
func (b *Builder) toolchain() (*unoidl.Toolchain, error) {
	sdkHome, err := b.env.SDKHome()
	if err != nil {
		return nil, err
	}
	ureBin, err := b.env.UREBinDir()
	if err != nil {
		return nil, err
	}
	ureLib, err := b.env.URELibDir()
	if err != nil {
		return nil, err
	}
	tc := unoidl.New(b.sdkBinDir(sdkHome), ureBin, ureLib)
	tc.Include(filepath.Join(sdkHome, "idl"))
	if !b.verbose {
		tc.SetStdout(io.Discard)
	}
	return tc, nil
}

// sdkBinDir resolves the SDK tool directory for the host platform,
// falling back to the modern bin/ layout when no candidate exists on
// disk.
func (b *Builder) sdkBinDir(sdkHome string) string {
	for _, sub := range sdkToolSubdirs[b.env.Platform()] {
		dir := filepath.Join(sdkHome, filepath.FromSlash(sub))
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return filepath.Join(sdkHome, "bin")
}

// referenceRegistries returns the type registries shipped with the
// office installation, so javamaker skips types that already exist.
func (b *Builder) referenceRegistries() ([]string, error) {
	base, err := b.env.OfficeBaseHome()
	if err != nil {
		return nil, err
	}
	var refs []string
	officeRdb := filepath.Join(base, "program", "types.rdb")
	if _, err := os.Stat(officeRdb); err == nil {
		refs = append(refs, officeRdb)
	}
	return refs, nil
}

// findIDLFiles walks the source directory for .idl files. Directories
// that are not package names (version control metadata like "CVS") are
// pruned from the walk, so their contents never reach the compiler. A
// missing source directory yields no files.
func (b *Builder) findIDLFiles() ([]string, error) {
	if _, err := os.Stat(b.source); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	var files []string
	err := filepath.WalkDir(b.source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != b.source && !IsPackageName(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".idl" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Packages returns the top-level IDL package directories under the
// source directory, skipping names that cannot be package names.
func (b *Builder) Packages() ([]string, error) {
	entries, err := os.ReadDir(b.source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, ent := range entries {
		if ent.IsDir() && IsPackageName(ent.Name()) {
			names = append(names, ent.Name())
		}
	}
	return names, nil
}

// IsPackageName reports whether name looks like an IDL package name.
// Package names are lower case, so directories dropped in by version
// control tools ("CVS") are rejected without a hard-coded list.
func IsPackageName(name string) bool {
	if name == "" || name[0] == '.' {
		return false
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; c >= 'A' && c <= 'Z' {
			return false
		}
	}
	return true
}
