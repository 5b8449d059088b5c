package scaffold

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/charmbracelet/log"

	"github.com/videojs/vjsplugin/internal/manifest"
	"github.com/videojs/vjsplugin/internal/project"
	"github.com/videojs/vjsplugin/internal/runtime"
	"github.com/videojs/vjsplugin/internal/vcs"
)

//go:embed templates
var scaffoldFS embed.FS

// ManifestFile is the name of the generated package manifest.
const ManifestFile = "package.json"

// Options control the side effects of Generate.
type Options struct {
	OutputDir string

	// Force allows generating into a non-empty directory that holds no
	// package.json.
	Force bool

	SkipGit     bool
	SkipInstall bool

	// Installer defaults to npm.
	Installer runtime.Installer

	// Logger defaults to a discarding logger.
	Logger *log.Logger
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string // written, relative to OutputDir
	Skipped   []string // kept because they already existed
	Warnings  []string
	Manifest  *manifest.Object
	GitInit   bool
	Installed bool
}

// BuildManifest synthesizes the package.json for ctx over the one already in
// dir, if any.
func BuildManifest(dir string, ctx *project.Context) (*manifest.Object, error) {
	existing, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	return manifest.Synthesize(existing, ctx)
}

// Generate writes the project described by ctx to opts.OutputDir. Running it
// again over a generated project regenerates the tooling files while
// keeping user content.
func Generate(ctx context.Context, pctx *project.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	outputDir := opts.OutputDir

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if err := checkOutputDir(outputDir, opts.Force); err != nil {
		return nil, err
	}

	m, err := BuildManifest(outputDir, pctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		OutputDir: outputDir,
		Manifest:  m,
	}

	for _, f := range Plan(pctx) {
		outPath := filepath.Join(outputDir, filepath.FromSlash(f.Path))
		if f.Keep && exists(outPath) {
			logger.Debug("keeping existing file", "file", f.Path)
			result.Skipped = append(result.Skipped, f.Path)
			continue
		}

		data, err := render(f.Template, pctx)
		if err != nil {
			return nil, err
		}
		if f.Merge {
			if data, err = mergeLines(outPath, data); err != nil {
				return nil, err
			}
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		logger.Debug("rendered", "file", f.Path)
		result.Files = append(result.Files, f.Path)
	}

	manifestPath := filepath.Join(outputDir, ManifestFile)
	if err := manifest.WriteFile(manifestPath, m); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, ManifestFile)
	logger.Info("wrote manifest", "package", pctx.Names.Package, "version", m.GetString("version"))

	// Validate the generated manifest against JSON Schema.
	valResult, valErr := manifest.ValidateFile(manifestPath)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	if err := project.SaveAnswers(outputDir, pctx); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, project.AnswersFile)

	if !opts.SkipGit {
		created, err := vcs.InitRepo(outputDir)
		switch {
		case err != nil:
			result.Warnings = append(result.Warnings, err.Error())
		case created:
			logger.Info("initialized git repository")
			result.GitInit = true
		}
	}

	if !opts.SkipInstall {
		installer := opts.Installer
		if installer == nil {
			installer = runtime.DispatchInstaller(runtime.ManagerNPM)
		}
		logger.Info("installing dependencies")
		out, err := installer.Install(ctx, outputDir)
		switch {
		case err != nil:
			result.Warnings = append(result.Warnings, fmt.Sprintf("Dependencies not installed: %v", err))
		case out.ExitCode != 0:
			result.Warnings = append(result.Warnings, fmt.Sprintf("Dependency install exited with code %d", out.ExitCode))
		default:
			result.Installed = true
		}
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	return result, nil
}

// checkOutputDir refuses to write into a directory with unrelated content.
// A directory holding a package.json or an answers file is a regeneration
// target.
func checkOutputDir(dir string, force bool) error {
	if force || exists(filepath.Join(dir, ManifestFile)) || exists(project.AnswersPath(dir)) {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err == nil && len(entries) > 0 {
		return fmt.Errorf("output directory %s is not empty and holds no %s", dir, ManifestFile)
	}
	return nil
}

// ReadManifest parses the package.json in dir. It returns (nil, nil) when
// there is none.
func ReadManifest(dir string) (*manifest.Object, error) {
	path := filepath.Join(dir, ManifestFile)
	m, err := manifest.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading existing manifest: %w", err)
	}
	return m, nil
}

func render(name string, data *project.Context) ([]byte, error) {
	tmplPath := "templates/" + name
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
