package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/tracekv/provider/memory"
)

func TestFlushWipesStore(t *testing.T) {
	ctx := context.Background()
	p := memory.New()
	require.NoError(t, p.Set(ctx, "k", []byte("v")))

	buf := &bytes.Buffer{}
	cmd := NewFlushCommand(memRootOptions(p))
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "store flushed")

	ok, err := p.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlushUnreachableStore(t *testing.T) {
	cmd := NewFlushCommand(memRootOptions(memory.NewDisconnected()))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))
}
