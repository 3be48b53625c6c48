package cli

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("pdbprep")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestDefaults(t *testing.T) {
	opts, err := parse(t, "-i", "sample.pdb")
	require.NoError(t, err)
	assert.Equal(t, "sample.pdb", opts.Input)
	assert.Equal(t, 7.0, opts.PH)
	assert.Equal(t, "AMBER", opts.ForceField)
	assert.Equal(t, "prepared.pqr", opts.Output)
	assert.Equal(t, "", opts.WorkDir)
}

func TestAllFlags(t *testing.T) {
	opts, err := parse(t,
		"-i", "1aki.pdb",
		"-p", "6.5",
		"-f", "CHARMM",
		"-o", "result.pqr",
		"-w", "/tmp/prep",
	)
	require.NoError(t, err)
	assert.Equal(t, "1aki.pdb", opts.Input)
	assert.Equal(t, 6.5, opts.PH)
	assert.Equal(t, "CHARMM", opts.ForceField)
	assert.Equal(t, "result.pqr", opts.Output)
	assert.Equal(t, "/tmp/prep", opts.WorkDir)
}

func TestMissingInput(t *testing.T) {
	_, err := parse(t, "-p", "7.4")
	require.Error(t, err)
	assert.IsType(t, MissingInputError{}, err)
}

func TestUnknownFlag(t *testing.T) {
	_, err := parse(t, "-i", "sample.pdb", "-bogus")
	require.Error(t, err)
	assert.IsType(t, InvalidArgumentError{}, err)
}

func TestUnexpectedPositional(t *testing.T) {
	_, err := parse(t, "-i", "sample.pdb", "extra.pdb")
	require.Error(t, err)
	assert.IsType(t, InvalidArgumentError{}, err)
}

func TestHelp(t *testing.T) {
	opts, err := parse(t, "-h")
	require.NoError(t, err)
	assert.True(t, opts.Help)

	// --help is not registered explicitly but must behave the same.
	opts, err = parse(t, "--help")
	require.NoError(t, err)
	assert.True(t, opts.Help)
}
