package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sumanta357/Pdb-prepare/internal/cli"
	"github.com/sumanta357/Pdb-prepare/internal/deps"
	"github.com/sumanta357/Pdb-prepare/internal/execx"
	"github.com/sumanta357/Pdb-prepare/internal/pipeline"
)

// Run parses argv, verifies the three external dependencies, and drives
// the preparation pipeline. The returned code is the process exit code:
// 0 for success or help, 1 for any failure.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(ctx, argv, stdout, stderr, execx.New())
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer, runner execx.Runner) int {
	fs := cli.NewFlagSet("pdbprep")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 1
	}
	if opts.Help {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	caps, err := deps.Check(ctx, runner)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	for _, c := range caps {
		log.Printf("Found %s (version %s)", c.Name, c.Version)
	}

	workDir, err := resolveWorkDir(opts.WorkDir)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log.Printf("Using working directory %s", workDir)

	p := pipeline.New(pipeline.Config{
		Input:      opts.Input,
		PH:         opts.PH,
		ForceField: opts.ForceField,
		Output:     opts.Output,
		WorkDir:    workDir,
	}, runner)
	if err := p.Run(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintf(stdout, "Prepared structure written to %s (PQR) and %s (PDB)\n",
		opts.Output, pipeline.ConvertedPath(opts.Output))
	return 0
}

// resolveWorkDir creates the directory that holds the generator script
// and the repaired intermediate. Without -w each run gets its own
// directory, so concurrent runs cannot race on the intermediate name.
func resolveWorkDir(explicit string) (string, error) {
	dir := explicit
	if dir == "" {
		runID := uuid.New().String()
		dir = filepath.Join(os.TempDir(), fmt.Sprintf("pdbprep-%s", runID[:8]))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "create working directory")
	}
	return dir, nil
}
