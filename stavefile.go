//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/gomdview"

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"v":   View,
	"r":   Render,
	"fmt": Lint.Fmt,
}

// Namespace types group related targets.
type (
	Test st.Namespace
	Lint st.Namespace
	Docs st.Namespace
	CI   st.Namespace
)

// Build compiles the viewer into bin/ unless nothing changed since the last
// build.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		return nil
	}
	fmt.Println("Building gomdview...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/gomdview")
}

// View opens $STAVE_VIEW in the interactive viewer, or browses the
// repository when it is unset.
func View() error {
	st.Deps(Build)
	return sh.RunV(binary, cmp.Or(os.Getenv("STAVE_VIEW"), "."))
}

// Render prints $STAVE_VIEW with colors forced on. Set STAVE_WIDTH to wrap
// at a fixed width.
func Render() error {
	path := os.Getenv("STAVE_VIEW")
	if path == "" {
		return errors.New("set STAVE_VIEW to the Markdown file to render")
	}
	st.Deps(Build)
	args := []string{"render", "--color", "always"}
	if width := os.Getenv("STAVE_WIDTH"); width != "" {
		args = append(args, "--width", width)
	}
	return sh.RunV(binary, append(args, path)...)
}

// Check formats, lints and tests.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs gomdview to $GOBIN or $GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/gomdview")
}

// Default runs all tests with the race detector and writes coverage.out.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails", "./...", "-race", "-coverprofile=coverage.out", "-covermode=atomic")
}

// Pkg runs the tests of one package, e.g. STAVE_PKG=./pkg/component.
func (Test) Pkg() error {
	pkg := os.Getenv("STAVE_PKG")
	if pkg == "" {
		return errors.New("set STAVE_PKG to a package pattern")
	}
	return gotestsum("standard-verbose", pkg, "-race")
}

// Coverage opens the HTML coverage report.
func (Test) Coverage() error {
	st.Deps(Test.Default)
	if err := sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html"); err != nil {
		return err
	}
	return sh.RunV("open", "coverage.html")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without auto-fix.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when gofmt would change a file.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt check failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nRun 'stave lint:fmt' to fix", out)
	}
	return nil
}

// Render renders every Markdown file of the repository at a narrow and a
// wide width and fails on the first document the renderer rejects.
func (Docs) Render() error {
	st.Deps(Build)
	docs, err := markdownFiles(".")
	if err != nil {
		return err
	}
	for _, doc := range docs {
		for _, width := range []string{"40", "120"} {
			if _, err := sh.Output(binary, "render", "--color", "never", "--width", width, doc); err != nil {
				return fmt.Errorf("render %s at width %s: %w", doc, width, err)
			}
		}
	}
	fmt.Printf("✓ rendered %d documents\n", len(docs))
	return nil
}

// Gate runs the CI checks in order.
func (CI) Gate() {
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.CI,
		Build,
		Test.Default,
		Docs.Render,
		CI.ModTidy,
		CI.Cross,
	)
}

// ModTidy fails when go mod tidy changes go.mod or go.sum.
func (CI) ModTidy() error {
	files := []string{"go.mod", "go.sum"}
	before := make([][]byte, len(files))
	for i, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		before[i] = data
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	for i, name := range files {
		after, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s after tidy: %w", name, err)
		}
		if !bytes.Equal(before[i], after) {
			return fmt.Errorf("%s changed after 'go mod tidy'", name)
		}
	}
	return nil
}

// Cross builds for the terminals the viewer supports. The clipboard and
// the external opener differ per platform.
func (CI) Cross() error {
	for _, platform := range []string{"linux/amd64", "linux/arm64", "darwin/arm64", "windows/amd64", "freebsd/amd64"} {
		goos, goarch, _ := strings.Cut(platform, "/")
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, "./cmd/gomdview"); err != nil {
			return fmt.Errorf("build %s: %w", platform, err)
		}
	}
	return nil
}

func gotestsum(format, pkg string, flags ...string) error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	args := []string{"tool", "gotestsum", "-f", format, "--", "-p", procs, "-parallel", procs, pkg}
	return sh.RunV("go", append(args, flags...)...)
}

// markdownFiles lists the Markdown files below root, skipping hidden,
// vendored and reference directories.
func markdownFiles(root string) ([]string, error) {
	var docs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "bin") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(name), ".md") {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return docs, nil
}

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}
