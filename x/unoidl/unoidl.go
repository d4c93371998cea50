// Package unoidl wraps the OpenOffice SDK code generation tools:
// idlc (IDL to .urd), regmerge (.urd into a types.rdb registry) and
// javamaker (registry to Java type stubs).
package unoidl

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Toolchain runs the SDK tools with the URE binaries and shared
// libraries on the lookup paths of every spawned command.
type Toolchain struct {
	sdkBinDir   string
	ureBinDir   string
	ureLibDir   string
	includeDirs []string
	stdout      io.Writer
	stderr      io.Writer
}

// New returns a ready-to-use Toolchain. Tools are run from sdkBinDir;
// ureBinDir and ureLibDir are put on PATH and the dynamic linker path.
func New(sdkBinDir, ureBinDir, ureLibDir string) *Toolchain {
	return &Toolchain{
		sdkBinDir: sdkBinDir,
		ureBinDir: ureBinDir,
		ureLibDir: ureLibDir,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Include adds IDL include directories passed to idlc via -I.
func (t *Toolchain) Include(dirs ...string) {
	t.includeDirs = append(t.includeDirs, dirs...)
}

// SetStdout redirects tool output.
func (t *Toolchain) SetStdout(w io.Writer) { t.stdout = w }

// SetStderr redirects tool error output.
func (t *Toolchain) SetStderr(w io.Writer) { t.stderr = w }

// Compile runs idlc on the given .idl files, writing one .urd file per
// input into outDir.
func (t *Toolchain) Compile(ctx context.Context, outDir string, idlFiles ...string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	return t.run(ctx, "idlc", t.compileArgs(outDir, idlFiles))
}

// Merge merges .urd files into the registry at rdb under the /UCR root
// key. The registry is created when it does not exist yet.
func (t *Toolchain) Merge(ctx context.Context, rdb string, urdFiles ...string) error {
	return t.run(ctx, "regmerge", mergeArgs(rdb, urdFiles))
}

// GenerateJava runs javamaker, generating .java stubs under outDir for
// every type in rdb that is not already covered by one of the
// reference registries.
func (t *Toolchain) GenerateJava(ctx context.Context, outDir, rdb string, refRdbs ...string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	return t.run(ctx, "javamaker", javaArgs(outDir, rdb, refRdbs))
}

func (t *Toolchain) compileArgs(outDir string, idlFiles []string) []string {
	args := []string{"-O", outDir}
	for _, dir := range t.includeDirs {
		args = append(args, "-I"+dir)
	}
	return append(args, idlFiles...)
}

func mergeArgs(rdb string, urdFiles []string) []string {
	return append([]string{rdb, "/UCR"}, urdFiles...)
}

func javaArgs(outDir, rdb string, refRdbs []string) []string {
	args := []string{"-BUCR", "-nD", "-O", outDir, rdb}
	for _, ref := range refRdbs {
		args = append(args, "-X"+ref)
	}
	return args
}

func (t *Toolchain) run(ctx context.Context, name string, args []string) error {
	exe := name
	if t.sdkBinDir != "" {
		exe = filepath.Join(t.sdkBinDir, name)
	}
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Stdout = t.stdout
	cmd.Stderr = t.stderr
	cmd.Env = t.environ()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// environ returns the process environment with the SDK and URE binary
// directories on PATH and the URE libraries on the platform's dynamic
// linker path.
func (t *Toolchain) environ() []string {
	env := os.Environ()
	env = prependPath(env, "PATH", t.sdkBinDir, t.ureBinDir)
	switch runtime.GOOS {
	case "darwin":
		env = prependPath(env, "DYLD_LIBRARY_PATH", t.ureLibDir)
	case "windows":
		env = prependPath(env, "PATH", t.ureLibDir)
	default:
		env = prependPath(env, "LD_LIBRARY_PATH", t.ureLibDir)
	}
	return env
}

// prependPath returns env with dirs prepended to the PATH-style
// variable key. Empty dirs are skipped; a missing variable is created.
func prependPath(env []string, key string, dirs ...string) []string {
	var add []string
	for _, d := range dirs {
		if d != "" {
			add = append(add, d)
		}
	}
	if len(add) == 0 {
		return env
	}
	value := strings.Join(add, string(os.PathListSeparator))

	prefix := key + "="
	for i, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			if cur := kv[len(prefix):]; cur != "" {
				value += string(os.PathListSeparator) + cur
			}
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
