package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// PackageManager runs "<Bin> install" in a project directory.
type PackageManager struct {
	Bin string

	// EnvFile optionally names a KEY=VALUE file (for example holding an
	// NPM_TOKEN for a private registry) whose entries are added to the
	// environment.
	EnvFile string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs the package manager in dir and streams its output to the
// configured writers. A non-zero exit is reported through Output.ExitCode,
// not as an error.
func (p *PackageManager) Install(ctx context.Context, dir string) (*Output, error) {
	bin, err := exec.LookPath(p.Bin)
	if err != nil {
		return nil, fmt.Errorf("installing dependencies requires %s: %w", p.Bin, err)
	}

	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("project directory %s: %w", dir, err)
	}

	cmd := exec.CommandContext(ctx, bin, "install")
	cmd.Dir = dir
	cmd.Env = p.environ()

	stdout := p.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := p.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running %s install: %w", p.Bin, err)
	}

	return output, nil
}

func (p *PackageManager) environ() []string {
	env := os.Environ()
	env = setEnv(env, "NO_UPDATE_NOTIFIER", "1")
	if p.EnvFile != "" {
		if data, err := os.ReadFile(p.EnvFile); err == nil {
			env = loadEnvFile(env, data)
		}
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

// loadEnvFile adds the non-empty, non-comment KEY=VALUE lines of data to
// env.
func loadEnvFile(env []string, data []byte) []string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key != "" && value != "" {
			env = setEnv(env, key, value)
		}
	}
	return env
}
