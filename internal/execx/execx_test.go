package execx

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesOutputSeparately(t *testing.T) {
	res, err := New().Run(context.Background(), "", "sh", "-c", "echo out; echo err 1>&2")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
}

func TestRunReportsNonzeroExitAsResult(t *testing.T) {
	res, err := New().Run(context.Background(), "", "sh", "-c", "echo boom 1>&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "boom\n", string(res.Stderr))
}

func TestRunMissingBinaryIsAnError(t *testing.T) {
	_, err := New().Run(context.Background(), "", "pdbprep-no-such-binary")
	require.Error(t, err)
}

func TestRunHonorsDir(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	res, err := New().Run(context.Background(), dir, "pwd")
	require.NoError(t, err)
	assert.Equal(t, dir, strings.TrimSpace(string(res.Stdout)))
}

func TestLookPath(t *testing.T) {
	path, err := New().LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = New().LookPath("pdbprep-no-such-binary")
	require.Error(t, err)
}
