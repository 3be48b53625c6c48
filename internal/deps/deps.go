package deps

import (
	"context"
	"fmt"
	"strings"

	"github.com/sumanta357/Pdb-prepare/internal/execx"
)

// Capability is the probe outcome for one runtime dependency.
type Capability struct {
	Name    string
	Present bool
	Version string
	Hint    string
}

// DependencyMissingError names the dependency that could not be resolved
// and how to install it.
type DependencyMissingError struct {
	Dependency string
	Hint       string
}

func (e DependencyMissingError) Error() string {
	return fmt.Sprintf("dependency %s not found; install it with: %s", e.Dependency, e.Hint)
}

const (
	pythonBin  = "python3"
	pdb2pqrBin = "pdb2pqr"
	obabelBin  = "obabel"

	pdbfixerHint = "pip install pdbfixer (or: conda install -c conda-forge pdbfixer)"
	pdb2pqrHint  = "pip install pdb2pqr"
	obabelHint   = "conda install -c conda-forge openbabel"
)

// pdbfixer is a Python library, so presence means "importable", not "on
// PATH". The probe also reports the installed version when it can.
const pdbfixerProbe = `import pdbfixer
try:
    import importlib.metadata as m
    print(m.version("pdbfixer"))
except Exception:
    print("unknown")
`

// Check probes all three external dependencies before the pipeline
// touches the filesystem. It returns every probe outcome plus an error
// for the first missing dependency.
func Check(ctx context.Context, runner execx.Runner) ([]Capability, error) {
	caps := []Capability{
		checkPDBFixer(ctx, runner),
		checkTool(ctx, runner, pdb2pqrBin, pdb2pqrHint, "--version"),
		checkTool(ctx, runner, obabelBin, obabelHint, "-V"),
	}
	for _, c := range caps {
		if !c.Present {
			return caps, DependencyMissingError{Dependency: c.Name, Hint: c.Hint}
		}
	}
	return caps, nil
}

func checkPDBFixer(ctx context.Context, runner execx.Runner) Capability {
	c := Capability{Name: "pdbfixer", Hint: pdbfixerHint}
	if _, err := runner.LookPath(pythonBin); err != nil {
		c.Hint = "install python3, then " + pdbfixerHint
		return c
	}
	res, err := runner.Run(ctx, "", pythonBin, "-c", pdbfixerProbe)
	if err != nil || res.ExitCode != 0 {
		return c
	}
	c.Present = true
	c.Version = firstLine(res.Stdout)
	return c
}

func checkTool(ctx context.Context, runner execx.Runner, name, hint string, versionFlag string) Capability {
	c := Capability{Name: name, Hint: hint}
	if _, err := runner.LookPath(name); err != nil {
		return c
	}
	c.Present = true
	// Version is best effort; some builds print it on stderr.
	if res, err := runner.Run(ctx, "", name, versionFlag); err == nil {
		c.Version = firstLine(res.Stdout)
		if c.Version == "" {
			c.Version = firstLine(res.Stderr)
		}
	}
	return c
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
