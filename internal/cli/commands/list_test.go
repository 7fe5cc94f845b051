package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aki/dircontents/internal/core/config"
	"github.com/aki/dircontents/internal/core/entry"
	"github.com/aki/dircontents/internal/core/listing"
	"github.com/aki/dircontents/internal/tests/helpers"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingFixture(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	helpers.WriteFile(t, dir, "a", "", 0o644)
	helpers.WriteFile(t, dir, "b.txt", "hello", 0o644)
	helpers.WriteFile(t, dir, ".hidden", "", 0o644)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	return dir
}

func TestList(t *testing.T) {
	dir := listingFixture(t)
	header := "➥ " + canonical(t, dir) + "\n"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default",
			args: []string{dir},
			want: header + "a  b.txt  sub  \n\n",
		},
		{
			name: "hidden",
			args: []string{"-a", dir},
			want: header + ".hidden  a  b.txt  sub  \n\n",
		},
		{
			name: "reverse",
			args: []string{"-r", dir},
			want: header + "sub  b.txt  a  \n\n",
		},
		{
			name: "narrow terminal wraps",
			args: []string{"--width", "14", dir},
			want: header + "a      b.txt  \nsub    \n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--color", "never", "--width", "80"}, tt.args...)
			stdout, _, err := executeCommand(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestList_Sizes(t *testing.T) {
	dir := t.TempDir()
	helpers.WriteFile(t, dir, "empty", "", 0o644)
	helpers.WriteFile(t, dir, "kilo", strings.Repeat("x", 1500), 0o644)
	helpers.Symlink(t, dir, "gone", filepath.Join(dir, "void"))
	header := "➥ " + canonical(t, dir) + "\n"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "bytes",
			args: []string{"-s"},
			want: header + "0 B       empty\ngone\n1500 B    kilo\n\n",
		},
		{
			name: "human readable",
			args: []string{"-sh"},
			want: header + "0.00 B    empty\ngone\n1.46 kB   kilo\n\n",
		},
		{
			name: "human readable base 1000",
			args: []string{"-shb"},
			want: header + "0.00 B    empty\ngone\n1.50 kB   kilo\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--color", "never"}, tt.args...)
			stdout, _, err := executeCommand(t, append(args, dir)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestList_MultipleDirectories(t *testing.T) {
	first := listingFixture(t)
	second := t.TempDir()

	stdout, _, err := executeCommand(t, "--color", "never", "--width", "80", first, second)
	require.NoError(t, err)

	assert.Equal(t,
		"➥ "+canonical(t, first)+"\na  b.txt  sub  \n\n"+
			"➥ "+canonical(t, second)+"\n\n",
		stdout)
}

func TestList_FailsFastButFlushesEarlierBlocks(t *testing.T) {
	dir := listingFixture(t)
	missing := filepath.Join(dir, "does-not-exist")

	stdout, _, err := executeCommand(t, "--color", "never", dir, missing, dir)

	var resolveErr listing.ErrPathResolution
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, 1, strings.Count(stdout, "➥ "))
}

func TestList_NotADirectory(t *testing.T) {
	dir := listingFixture(t)

	_, _, err := executeCommand(t, "--color", "never", filepath.Join(dir, "b.txt"))

	var notDir listing.ErrNotDirectory
	require.ErrorAs(t, err, &notDir)
}

func TestList_AlwaysColor(t *testing.T) {
	dir := listingFixture(t)

	stdout, _, err := executeCommand(t, "--color", "always", "--width", "80", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "\x1b[")
}

func TestList_NoColorEnvironment(t *testing.T) {
	dir := listingFixture(t)
	t.Setenv("NO_COLOR", "1")

	stdout, _, err := executeCommand(t, "--color", "always", "--width", "80", dir)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "\x1b[")
}

func TestList_ConfigFileDefaults(t *testing.T) {
	dir := listingFixture(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("show_hidden: true\nsort: reversed\ncolor: never\nwidth: 80\n"), 0o644))

	stdout, _, err := executeCommand(t, "--config", cfgPath, dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "sub  b.txt  a  .hidden  \n")

	// Flags override the file
	stdout, _, err = executeCommand(t, "--config", cfgPath, "--all=false", "--reverse=false", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "a  b.txt  sub  \n")
}

func TestList_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sort: sideways\n"), 0o644))

	_, _, err := executeCommand(t, "--config", cfgPath, t.TempDir())

	var invalid config.ErrInvalid
	require.ErrorAs(t, err, &invalid)
}

func TestList_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "color", args: []string{"--color", "rainbow"}},
		{name: "negative width", args: []string{"--width", "-3"}},
		{name: "log level", args: []string{"--log-level", "chatty"}},
		{name: "log format", args: []string{"--log-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, append(tt.args, t.TempDir())...)
			assert.Error(t, err)
		})
	}
}

func TestList_HumanReadableIsShortH(t *testing.T) {
	cmd := NewRootCommand()

	flag := cmd.Flags().ShorthandLookup("h")
	require.NotNil(t, flag)
	assert.Equal(t, "human-readable", flag.Name)
	assert.NotNil(t, cmd.Flags().Lookup("help"))
}

func TestListOptions_Apply(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		start func(*config.Config)
		check func(*testing.T, *config.Config)
	}{
		{
			name: "unset flags keep file values",
			start: func(c *config.Config) {
				c.ShowHidden = true
				c.Sort = config.SortNatural
			},
			check: func(t *testing.T, c *config.Config) {
				assert.True(t, c.ShowHidden)
				assert.Equal(t, config.SortNatural, c.Sort)
			},
		},
		{
			name: "unsorted",
			args: []string{"-U"},
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.SortNatural, c.Sort)
			},
		},
		{
			name: "reverse ignored with unsorted",
			args: []string{"-U", "-r"},
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.SortNatural, c.Sort)
			},
		},
		{
			name:  "sorted again",
			args:  []string{"--unsorted=false"},
			start: func(c *config.Config) { c.Sort = config.SortNatural },
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.SortLexicographic, c.Sort)
			},
		},
		{
			name: "sizes",
			args: []string{"-shb"},
			check: func(t *testing.T, c *config.Config) {
				assert.True(t, c.ShowSize)
				assert.True(t, c.HumanReadable)
				assert.Equal(t, int(listing.Base1000), c.SizeBase)
			},
		},
		{
			name: "dereference",
			args: []string{"-L"},
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.LinksTarget, c.Links)
			},
		},
		{
			name: "color and width",
			args: []string{"--color", "never", "--width", "120"},
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "never", c.Color)
				assert.Equal(t, 120, c.Width)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			o := &listOptions{}
			registerListFlags(cmd, o)
			require.NoError(t, cmd.Flags().Parse(tt.args))

			cfg := config.DefaultConfig()
			if tt.start != nil {
				tt.start(cfg)
			}
			o.apply(cmd.Flags(), cfg)
			tt.check(t, cfg)

			opts, err := cfg.Options()
			require.NoError(t, err)
			assert.Contains(t, []entry.LinkPolicy{entry.LinkAsSymlink, entry.LinkAsTarget}, opts.Links)
		})
	}
}
