package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naoray/ds/internal/exec"
)

func TestDiscoverRoot_InsideRepository(t *testing.T) {
	mock := exec.NewMockCommander()
	mock.SetResponse("git", []string{"rev-parse", "--show-toplevel"}, []byte("/repo\n"), nil)

	root := DiscoverRoot(context.Background(), mock, "/repo/sub")
	assert.Equal(t, "/repo", root)

	call := mock.LastCall()
	require.NotNil(t, call)
	assert.Equal(t, "/repo/sub", call.Dir)
}

func TestDiscoverRoot_OutsideRepository(t *testing.T) {
	mock := exec.NewMockCommander()
	mock.SetResponse("git", []string{"rev-parse", "--show-toplevel"},
		[]byte("fatal: not a git repository"), errors.New("exit status 128"))

	root := DiscoverRoot(context.Background(), mock, "/tmp")
	assert.Empty(t, root)
}
