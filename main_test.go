package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (*test.Hook, error) {
	t.Helper()
	log.SetOutput(io.Discard)
	hook := test.NewGlobal()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	})

	app := newApp()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	return hook, app.Run(append([]string{"scaledown"}, args...))
}

func messages(hook *test.Hook, level log.Level) []string {
	res := make([]string, 0)
	for _, e := range hook.AllEntries() {
		if e.Level == level {
			res = append(res, e.Message)
		}
	}
	return res
}

func TestExampleCommand(t *testing.T) {
	hook, err := runApp(t, "example")
	require.NoError(t, err)

	assert.Contains(t, messages(hook, log.InfoLevel), "Aliased divisor:  [1 1 2 3 4]")
	assert.Contains(t, messages(hook, log.InfoLevel), "Snapshot divisor: [1 0.5 1 1.5 2]")
	assert.Equal(t, []string{"Results differ at 4 of 5 positions: [1 2 3 4]"}, messages(hook, log.WarnLevel))
}

func TestRunCommandValueDivisor(t *testing.T) {
	hook, err := runApp(t, "run", "-v", "2,1,2,3,4", "-d", "2")
	require.NoError(t, err)

	assert.Contains(t, messages(hook, log.InfoLevel), "Results agree")
	assert.Empty(t, messages(hook, log.WarnLevel))
}

func TestRunCommandIndexDivisor(t *testing.T) {
	hook, err := runApp(t, "run", "--values", "4,8,2,6", "--divisor_index", "2")
	require.NoError(t, err)

	assert.Contains(t, messages(hook, log.InfoLevel), "Snapshot divisor: [2 4 1 3]")
	assert.Equal(t, []string{"Results differ at 1 of 4 positions: [3]"}, messages(hook, log.WarnLevel))
}

func TestRunCommandErrors(t *testing.T) {
	_, err := runApp(t, "run", "-v", "1,2", "-i", "5")
	assert.ErrorContains(t, err, "out of range")

	_, err = runApp(t, "run", "-d", "2", "-i", "0")
	assert.ErrorContains(t, err, "Only one of")
}

func TestDebugFlagLogsAlias(t *testing.T) {
	hook, err := runApp(t, "--debug", "example")
	require.NoError(t, err)
	assert.Contains(t, messages(hook, log.DebugLevel), "Divisor aliases element 0 of the sequence")
}

func TestSpectrumCommand(t *testing.T) {
	hook, err := runApp(t, "spectrum", "--samples", "64", "--freq", "4")
	require.NoError(t, err)

	info := strings.Join(messages(hook, log.InfoLevel), "\n")
	assert.Contains(t, info, "Spectrum of 33 bins, peak at bin 0")
	require.Len(t, messages(hook, log.WarnLevel), 1)

	_, err = runApp(t, "spectrum", "--samples", "0")
	assert.Error(t, err)

	_, err = runApp(t, "spectrum", "--bin", "40")
	assert.ErrorContains(t, err, "out of range")
}

func TestChartFlag(t *testing.T) {
	name := filepath.Join(t.TempDir(), "example.html")
	_, err := runApp(t, "--chart", name, "example")
	require.NoError(t, err)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "snapshot")
}

func TestTraceFlagLogsElements(t *testing.T) {
	hook, err := runApp(t, "--trace", "example")
	require.NoError(t, err)

	traces := messages(hook, log.TraceLevel)
	require.Len(t, traces, 5)
	assert.Equal(t, "s[0]: 2 -> aliased 1, snapshot 1", traces[0])
	assert.Equal(t, "s[1]: 1 -> aliased 1, snapshot 0.5", traces[1])
	assert.Equal(t, "s[4]: 4 -> aliased 4, snapshot 2", traces[4])
}

func TestEnvironmentFlags(t *testing.T) {
	t.Setenv("SCALEDOWN_DEBUG", "1")
	hook, err := runApp(t, "example")
	require.NoError(t, err)
	assert.Contains(t, messages(hook, log.DebugLevel), "Divisor aliases element 0 of the sequence")
	assert.Empty(t, messages(hook, log.TraceLevel))

	t.Setenv("SCALEDOWN_DEBUG", "")
	t.Setenv("SCALEDOWN_TRACE", "true")
	hook, err = runApp(t, "example")
	require.NoError(t, err)
	assert.Len(t, messages(hook, log.TraceLevel), 5)

	name := filepath.Join(t.TempDir(), "env.html")
	t.Setenv("SCALEDOWN_TRACE", "")
	t.Setenv("SCALEDOWN_CHART", name)
	_, err = runApp(t, "example")
	require.NoError(t, err)
	assert.FileExists(t, name)
}

func TestSpectrumCommandHann(t *testing.T) {
	hook, err := runApp(t, "spectrum", "--hann")
	require.NoError(t, err)

	info := strings.Join(messages(hook, log.InfoLevel), "\n")
	assert.Contains(t, info, "Spectrum of 33 bins, peak at bin 0")
	assert.Contains(t, info, "Snapshot divisor: [1 ")
}
