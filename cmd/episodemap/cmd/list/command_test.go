package list

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catein/episodemap/internal/appcontext"
	"github.com/catein/episodemap/pkg/episodes"
)

func TestListTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episode_names.txt")
	require.NoError(t, os.WriteFile(path, []byte("01\tb\t#12: Twelve\n00\ta\t#3: Three\n02\tc\tBonus\n"), 0o644))
	store := episodes.NewStore(path)

	app := &appcontext.Mock{
		StoreFunc:        func() *episodes.Store { return store },
		OutputFormatFunc: func() string { return "table" },
	}

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Less(t, bytes.Index(out.Bytes(), []byte("#3: Three")), bytes.Index(out.Bytes(), []byte("#12: Twelve")))
	assert.Contains(t, text, "3 episodes, highest #12")
}

func TestListEmpty(t *testing.T) {
	store := episodes.NewStore(filepath.Join(t.TempDir(), "missing.txt"))
	app := &appcontext.Mock{
		StoreFunc:        func() *episodes.Store { return store },
		OutputFormatFunc: func() string { return "json" },
	}

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[]\n", out.String())
}
