// Package execxtest provides a scripted execx.Runner so pipeline and
// dependency-check tests run without the real tools installed.
package execxtest

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sumanta357/Pdb-prepare/internal/execx"
)

// Call records one Runner invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Runner implements execx.Runner from a script. Present lists the
// binaries LookPath resolves (nil means everything resolves). ExitCodes
// forces a nonzero exit for a binary. Stdout/Stderr feed the fake tool
// output. OnRun, when set, runs after each recorded call so a test can
// fake the files a real tool would write.
type Runner struct {
	Present   map[string]bool
	ExitCodes map[string]int
	Stdout    map[string]string
	Stderr    map[string]string
	OnRun     func(c Call) error
	Calls     []Call
}

func (r *Runner) Run(_ context.Context, dir, name string, args ...string) (execx.Result, error) {
	c := Call{Dir: dir, Name: name, Args: args}
	r.Calls = append(r.Calls, c)
	res := execx.Result{
		Stdout: []byte(r.Stdout[name]),
		Stderr: []byte(r.Stderr[name]),
	}
	if code, ok := r.ExitCodes[name]; ok && code != 0 {
		res.ExitCode = code
		return res, nil
	}
	if r.OnRun != nil {
		if err := r.OnRun(c); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (r *Runner) LookPath(name string) (string, error) {
	if r.Present == nil || r.Present[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.Errorf("exec: %q: executable file not found in $PATH", name)
}

// Named returns the binary names in invocation order.
func (r *Runner) Named() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}
