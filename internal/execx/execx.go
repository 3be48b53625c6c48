package execx

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// Result captures everything a finished tool invocation reported.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner invokes external programs. The pipeline and the dependency
// checks go through this seam so tests can run without the real tools
// installed.
type Runner interface {
	// Run executes name with args, with dir as the working directory
	// (empty dir means the process working directory). A nonzero tool
	// exit is reported in Result, not as an error; the error return is
	// reserved for failures to run the tool at all.
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)

	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)
}

type execRunner struct{}

// New returns a Runner backed by os/exec.
func New() Runner { return execRunner{} }

func (execRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, errors.Wrapf(err, "run %s", name)
	}
	return res, nil
}

func (execRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	return path, errors.WithStack(err)
}
