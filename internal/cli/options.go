package cli

import (
	"flag"
	"fmt"
)

// Options ...
type Options struct {
	Input      string
	PH         float64
	ForceField string
	Output     string
	WorkDir    string
	Help       bool
}

// MissingInputError is returned when no input structure was given.
type MissingInputError struct{}

func (MissingInputError) Error() string {
	return "missing required input structure (-i)"
}

// InvalidArgumentError is returned for flags the tool does not know.
type InvalidArgumentError struct {
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

// NewFlagSet returns a FlagSet with the pdbprep usage text. The caller
// controls where usage is printed via SetOutput.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"Usage: %s -i INPUT_PDB [-p PH] [-f FORCE_FIELD] [-o OUTPUT_PQR] [-w WORKDIR] [-h]\n\n"+
				"Prepares a protein structure for docking: repairs missing residues and\n"+
				"atoms with PDBFixer, assigns protonation states at the given pH with\n"+
				"pdb2pqr, and converts the resulting PQR back to PDB with Open Babel.\n\n",
			name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags and returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opts Options
	fs.StringVar(&opts.Input, "i", "", "input PDB structure (required)")
	fs.Float64Var(&opts.PH, "p", 7.0, "pH for protonation state assignment")
	fs.StringVar(&opts.ForceField, "f", "AMBER", "force field passed to pdb2pqr")
	fs.StringVar(&opts.Output, "o", "prepared.pqr", "output PQR path")
	fs.StringVar(&opts.WorkDir, "w", "", "working directory for intermediates (default: a fresh run directory under the system temp dir)")
	fs.BoolVar(&opts.Help, "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		if err == flag.ErrHelp {
			opts.Help = true
			return opts, nil
		}
		return opts, InvalidArgumentError{Reason: err.Error()}
	}
	if opts.Help {
		return opts, nil
	}
	if fs.NArg() > 0 {
		return opts, InvalidArgumentError{Reason: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	if opts.Input == "" {
		return opts, MissingInputError{}
	}
	return opts, nil
}
