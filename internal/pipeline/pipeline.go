package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sumanta357/Pdb-prepare/internal/execx"
)

// Config ...
type Config struct {
	Input      string
	PH         float64
	ForceField string
	Output     string
	WorkDir    string
}

// Pipeline runs the three preparation stages in order: repair,
// protonate, convert. Any stage failure is fatal; artifacts written by
// earlier stages are left in place.
type Pipeline struct {
	cfg    Config
	runner execx.Runner
}

const (
	pythonBin  = "python3"
	pdb2pqrBin = "pdb2pqr"
	obabelBin  = "obabel"

	fixedName  = "fixed.pdb"
	fixerName  = "fix_structure.py"
	pqrSuffix  = ".pqr"
	convMarker = "_converted.pdb"
)

// Hydrogen placement stays disabled here: pdb2pqr assigns protonation
// states at the requested pH in the next stage. Whether the two steps
// interact correctly is a domain question, not decided in this tool.
const fixerScript = `from pdbfixer import PDBFixer
from openmm.app import PDBFile

fixer = PDBFixer(filename=%q)
fixer.findMissingResidues()
fixer.findMissingAtoms()
fixer.addMissingAtoms()
# fixer.addMissingHydrogens(7.0)
with open(%q, "w") as out:
    PDBFile.writeFile(fixer.topology, fixer.positions, out)
`

// New ...
func New(cfg Config, runner execx.Runner) *Pipeline {
	return &Pipeline{cfg: cfg, runner: runner}
}

// ConvertedPath derives the stage-3 output path from the configured PQR
// path: result.pqr becomes result_converted.pdb.
func ConvertedPath(output string) string {
	return strings.TrimSuffix(output, pqrSuffix) + convMarker
}

// FixedPath is where the repaired intermediate structure is written.
func (p *Pipeline) FixedPath() string {
	return filepath.Join(p.cfg.WorkDir, fixedName)
}

// Run executes the stages sequentially and stops at the first failure.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.repair(ctx); err != nil {
		return err
	}
	if err := p.protonate(ctx); err != nil {
		return err
	}
	return p.convert(ctx)
}

func (p *Pipeline) repair(ctx context.Context) error {
	log.Printf("Repairing structure %s", p.cfg.Input)
	input, err := filepath.Abs(p.cfg.Input)
	if err != nil {
		return StructureRepairError{Detail: err.Error()}
	}
	// The script runs with the work dir as cwd, so it gets the absolute
	// intermediate path.
	fixed, err := filepath.Abs(p.FixedPath())
	if err != nil {
		return StructureRepairError{Detail: err.Error()}
	}
	script := fmt.Sprintf(fixerScript, input, fixed)
	scriptPath := filepath.Join(p.cfg.WorkDir, fixerName)
	if err := os.WriteFile(scriptPath, []byte(script), 0644); err != nil {
		return StructureRepairError{Detail: err.Error()}
	}
	res, err := p.runner.Run(ctx, p.cfg.WorkDir, pythonBin, scriptPath)
	if err != nil {
		return StructureRepairError{Detail: err.Error()}
	}
	if res.ExitCode != 0 {
		return StructureRepairError{Detail: detail(res)}
	}
	log.Printf("Wrote repaired structure %s", p.FixedPath())
	return nil
}

func (p *Pipeline) protonate(ctx context.Context) error {
	log.Printf("Assigning protonation states at pH %g with force field %s", p.cfg.PH, p.cfg.ForceField)
	res, err := p.runner.Run(ctx, "", pdb2pqrBin,
		"--ff="+p.cfg.ForceField,
		"--clean",
		fmt.Sprintf("--with-ph=%g", p.cfg.PH),
		p.FixedPath(),
		p.cfg.Output,
	)
	if err != nil {
		return ProtonationAssignmentError{Detail: err.Error()}
	}
	if res.ExitCode != 0 {
		return ProtonationAssignmentError{Detail: detail(res)}
	}
	log.Printf("Wrote protonated structure %s", p.cfg.Output)
	return nil
}

func (p *Pipeline) convert(ctx context.Context) error {
	converted := ConvertedPath(p.cfg.Output)
	log.Printf("Converting %s to %s", p.cfg.Output, converted)
	res, err := p.runner.Run(ctx, "", obabelBin, p.cfg.Output, "-O", converted)
	if err != nil {
		return ConversionError{Detail: err.Error()}
	}
	if res.ExitCode != 0 {
		return ConversionError{Detail: detail(res)}
	}
	log.Printf("Wrote converted structure %s", converted)
	return nil
}

// detail flattens a tool's result into a single diagnostic line so stage
// errors carry the tool output instead of only an exit code.
func detail(res execx.Result) string {
	msg := strings.TrimSpace(string(res.Stderr))
	if msg == "" {
		msg = strings.TrimSpace(string(res.Stdout))
	}
	if msg == "" {
		return fmt.Sprintf("exit status %d", res.ExitCode)
	}
	return fmt.Sprintf("exit status %d: %s", res.ExitCode, msg)
}
