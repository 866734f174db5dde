package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_Defaults(t *testing.T) {
	out, err := run(t, "--no-color", "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "DEFAULT")
	assert.Contains(t, out, "Planet with Satellite")
	assert.Contains(t, out, "Radius: 6378 km")
	assert.Contains(t, out, "Breathability: ")
}

func TestRun_SameSeedSameSurvey(t *testing.T) {
	a, err := run(t, "--no-color", "--seed", "7", "-n", "Twin")
	require.NoError(t, err)
	b, err := run(t, "--no-color", "--seed", "7", "-n", "Twin")
	require.NoError(t, err)

	// designations are fresh uuids; everything else must replay
	assert.Equal(t, stripDesignation(a), stripDesignation(b))
}

func TestRun_FlagsShapeTheWorld(t *testing.T) {
	out, err := run(t, "--no-color", "--seed", "3", "--lone",
		"-n", "Arcadia", "-m", "0.93", "-M", "0.94", "-D", "0.892")
	require.NoError(t, err)

	assert.Contains(t, out, "Arcadia")
	assert.Contains(t, out, "Lone Planet")
	assert.Contains(t, out, "Orbital Period = 7617.0 hours")
}

func TestRun_ProfileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	doc := `name: Lorelei
type: lone
mass: 0.93
star_mass: 0.94
star_distance: 0.892
seed: 11
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := run(t, "--no-color", "--profile", path, "-n", "Override")
	require.NoError(t, err)

	assert.Contains(t, out, "Override", "command-line flags beat the profile")
	assert.NotContains(t, out, "Lorelei")
	assert.Contains(t, out, "Lone Planet")
}

func TestRun_RejectsBadParameters(t *testing.T) {
	_, err := run(t, "--seed", "1", "-m", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"-1" should be a positive float`)
}

func stripDesignation(s string) string {
	var b bytes.Buffer
	for _, line := range bytes.Split([]byte(s), []byte("\n")) {
		if bytes.HasPrefix(line, []byte("Designation: ")) {
			continue
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}
