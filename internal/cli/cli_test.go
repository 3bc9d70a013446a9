package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/htmlpp/internal/config"
	"github.com/aretw0/htmlpp/internal/logging"
	"github.com/aretw0/htmlpp/pkg/strip"
	"github.com/aretw0/htmlpp/pkg/trim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnv(stdin string) (*Env, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Env{
		Config: config.Default(),
		Logger: logging.NewNop(),
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestStrip_Stdin(t *testing.T) {
	env, stdout, _ := newTestEnv("a\n@@DEBUG\nb\n@@END\nc\n")

	require.NoError(t, env.Strip(context.Background(), ""))
	assert.Equal(t, "a\nc\n", stdout.String())
}

func TestStrip_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>\n<!-- @@DEBUG -->\n<pre>dump</pre>\n<!-- @@END -->\n</p>\n"), 0o644))

	env, stdout, _ := newTestEnv("")
	require.NoError(t, env.Strip(context.Background(), path))
	assert.Equal(t, "<p>\n</p>\n", stdout.String())
}

func TestStrip_Malformed(t *testing.T) {
	env, stdout, _ := newTestEnv("ok\n@@FOO\nlater\n")

	err := env.Strip(context.Background(), "-")
	assert.ErrorIs(t, err, strip.ErrMalformedMarker)
	assert.Contains(t, err.Error(), "@@FOO")
	assert.Equal(t, "ok\n", stdout.String())
}

func TestStrip_MissingFile(t *testing.T) {
	env, _, _ := newTestEnv("")
	err := env.Strip(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestTrim(t *testing.T) {
	t.Run("Catalog", func(t *testing.T) {
		env, stdout, _ := newTestEnv("")
		require.NoError(t, env.Trim(TrimOptions{Length: 64}))

		var want bytes.Buffer
		require.NoError(t, trim.RenderAllTrims(&want))
		assert.Equal(t, want.String(), stdout.String())
	})

	t.Run("Basic Catalog", func(t *testing.T) {
		env, stdout, _ := newTestEnv("")
		require.NoError(t, env.Trim(TrimOptions{Catalog: trim.CatalogBasic, Length: 4}))
		assert.True(t, strings.HasPrefix(stdout.String(), "\n * *\n * *\n\n  **\n  **\n"))
	})

	t.Run("Single Pattern", func(t *testing.T) {
		env, stdout, _ := newTestEnv("")
		require.NoError(t, env.Trim(TrimOptions{Pattern: "1,2,1", Length: 6}))
		assert.Equal(t, " **  ** \n", stdout.String())
	})

	t.Run("List Plain", func(t *testing.T) {
		env, stdout, _ := newTestEnv("")
		require.NoError(t, env.Trim(TrimOptions{List: true}))
		assert.Contains(t, stdout.String(), "# Trim catalog: active")
		assert.Contains(t, stdout.String(), "`1,4,2,2,2,4,1`")
	})

	t.Run("Errors", func(t *testing.T) {
		env, _, _ := newTestEnv("")
		assert.ErrorIs(t, env.Trim(TrimOptions{Catalog: "fancy"}), trim.ErrUnknownCatalog)
		assert.ErrorIs(t, env.Trim(TrimOptions{Pattern: "0"}), trim.ErrNonPositiveRun)
		assert.ErrorIs(t, env.Trim(TrimOptions{Length: -1}), trim.ErrLengthOutOfRange)
		assert.ErrorIs(t, env.Trim(TrimOptions{Length: trim.MaxLength + 1}), trim.ErrLengthOutOfRange)
	})
}

func TestTail(t *testing.T) {
	t.Run("Report", func(t *testing.T) {
		env, stdout, _ := newTestEnv("")
		require.NoError(t, env.Tail(nil))
		assert.Equal(t, "4 2 2\n2748 300 16\n0 0 1\n11 40 1\n273 785 512\n", stdout.String())
	})

	t.Run("Pair", func(t *testing.T) {
		env, stdout, _ := newTestEnv("")
		require.NoError(t, env.Tail([]string{"0xabc", "0b100101100"}))
		assert.Equal(t, "2748 300 16\n", stdout.String())
	})

	t.Run("Full Width", func(t *testing.T) {
		env, stdout, _ := newTestEnv("")
		require.NoError(t, env.Tail([]string{"0xffffffffffffffff", "18446744073709551615"}))
		assert.Equal(t, "18446744073709551615 18446744073709551615 18446744073709551616\n", stdout.String())
	})

	t.Run("Bad Operands", func(t *testing.T) {
		env, _, _ := newTestEnv("")
		assert.Error(t, env.Tail([]string{"1"}))
		assert.Error(t, env.Tail([]string{"x", "1"}))
		assert.Error(t, env.Tail([]string{"1", "-2"}))
	})
}

func TestServe_StopsOnCancel(t *testing.T) {
	env, _, stderr := newTestEnv("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, env.Serve(ctx, "0", false))
	assert.Contains(t, stderr.String(), "Start shutdown (context cancelled)")
	assert.Contains(t, stderr.String(), "stopped gracefully")
}

func TestServe_ReportsSignal(t *testing.T) {
	env, _, stderr := newTestEnv("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sc := &SignalContext{Context: ctx, Cancel: cancel, sigVal: os.Interrupt}

	require.NoError(t, env.Serve(sc, "0", false))
	assert.Contains(t, stderr.String(), "Start shutdown (signal: interrupt)")
}

func TestMCP_UnknownTransport(t *testing.T) {
	env, _, _ := newTestEnv("")
	err := env.MCP(context.Background(), "carrier-pigeon", 0)
	assert.ErrorContains(t, err, "unknown transport")
}

func TestNewEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htmlpp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trim:\n  length: 32\n"), 0o644))

	env, err := NewEnv(path, false)
	require.NoError(t, err)
	assert.Equal(t, 32, env.Config.Trim.Length)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))
	_, err = NewEnv(path, true)
	assert.Error(t, err)
}
