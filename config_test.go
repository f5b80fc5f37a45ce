package lazyconf

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/lazyconf/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func powersFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"test_data/powers.lz": {Data: testutil.LoadFixture(t, "powers.lz")},
		"alt/override.lz":     {Data: []byte("Superman:\n    power:xray\n    lair:fortress.db\n")},
		"alt/bad.lz":          {Data: []byte("    power:none\n")},
		"conf/second.lz":      {Data: []byte("Batman:\n    car:batmobile\n")},
		"app.env":             {Data: testutil.LoadFixture(t, "app.env")},
	}
}

func TestConfig_HelpReport(t *testing.T) {
	cfg, err := Config("-c", []string{"test_data/powers.lz", "{HOME}/.config/myprogram.lz"},
		WithArgs(),
		WithFS(powersFS(t)),
		WithLookupEnv(testutil.Lookup(map[string]string{"HOME": "/home/test"})),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)

	power, ok := cfg.Grab().
		Conf("Superman.power").
		Flag("-sppower").
		Env("SUPERMAN_POWER").
		Help("What power").
		Value()
	assert.True(t, ok)
	assert.Equal(t, "fly", power)

	home, ok := cfg.Grab().Conf("Superman.home").Conf("Batman.home").Value()
	assert.True(t, ok)
	assert.Equal(t, "Gotham", home)

	age, err := As[int](cfg.Grab().Conf("Superman.age"))
	require.NoError(t, err)
	assert.Equal(t, 30, age)

	want := "My Program\n" +
		"Config file location flag: \"-c\"\n" +
		"default locations : [\"test_data/powers.lz\", \"{HOME}/.config/myprogram.lz\"]\n" +
		"What power:\n" +
		"\tConf:Superman.power,\tFlag:-sppower,\tEnv:SUPERMAN_POWER,\n\n"
	assert.Equal(t, want, cfg.HelpString("My Program"))

	var out bytes.Buffer
	cfg.out = &out
	assert.False(t, cfg.Help("My Program"), "no --help and no failures")
	assert.Zero(t, out.Len())
}

func TestConfig_SourceOrder(t *testing.T) {
	cfg, err := Config("-c", []string{"test_data/powers.lz", "missing.lz", "conf/second.lz"},
		WithArgs("-c", "alt/override.lz", "-power", "flag"),
		WithFS(powersFS(t)),
		WithLookupEnv(testutil.Lookup(map[string]string{"SUPERMAN_POWER": "env"})),
		WithDotEnv("app.env", "missing.env"),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)

	assert.Equal(t, []Tag{Conf, Flag, Env, Env, Conf, Conf}, cfg.Tags())

	// Flagged file beats the default locations.
	v, _ := cfg.Grab().Conf("Superman.power").Value()
	assert.Equal(t, "xray", v)

	// Default locations are still searched.
	v, _ = cfg.Grab().Conf("Superman.age").Value()
	assert.Equal(t, "30", v)
	v, _ = cfg.Grab().Conf("Batman.car").Value()
	assert.Equal(t, "batmobile", v)

	// The real environment beats dotenv files.
	v, _ = cfg.Grab().Env("SUPERMAN_POWER").Value()
	assert.Equal(t, "env", v)
	v, _ = cfg.Grab().Env("BATMAN_HOME").Value()
	assert.Equal(t, "Wayne Manor", v)

	v, _ = cfg.Grab().Flag("-power").Value()
	assert.Equal(t, "flag", v)

	// Paths from the flagged file resolve against its directory.
	p, _ := cfg.Grab().Conf("Superman.lair").Path()
	assert.Equal(t, "alt/fortress.db", p)
}

func TestConfig_FlaggedPathExpanded(t *testing.T) {
	cfg, err := Config("-c", nil,
		WithArgs("-c", "{DIR}/override.lz"),
		WithFS(powersFS(t)),
		WithLookupEnv(testutil.Lookup(map[string]string{"DIR": "alt"})),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)

	v, _ := cfg.Grab().Conf("Superman.power").Value()
	assert.Equal(t, "xray", v)
}

func TestConfig_FlaggedErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"parse failure surfaces", []string{"-c", "alt/bad.lz"}, ErrParse},
		{"unknown variable", []string{"-c", "{NOPE}/x.lz"}, ErrEnvVar},
		{"unbalanced brace", []string{"-c", "{NOPE/x.lz"}, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Config("-c", nil,
				WithArgs(tt.args...),
				WithFS(powersFS(t)),
				WithLookupEnv(testutil.Lookup(nil)),
				WithLogger(quietLogger()),
			)
			assert.Nil(t, cfg)
			assert.True(t, errors.Is(err, tt.wantErr), "error = %v", err)
		})
	}
}

func TestConfig_FlaggedMissingFileSwallowed(t *testing.T) {
	var logs bytes.Buffer
	cfg, err := Config("-c", []string{"test_data/powers.lz"},
		WithArgs("-c", "nowhere.lz"),
		WithFS(powersFS(t)),
		WithLookupEnv(testutil.Lookup(nil)),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	require.NoError(t, err)

	assert.Equal(t, []Tag{Flag, Env, Conf}, cfg.Tags())
	assert.True(t, strings.Contains(logs.String(), "nowhere.lz"), "load failure should be logged")
}

func TestConfig_DefaultFailuresSkipped(t *testing.T) {
	cfg, err := Config("-c", []string{"alt/bad.lz", "{NOPE}/x.lz", "missing.lz"},
		WithArgs(),
		WithFS(powersFS(t)),
		WithLookupEnv(testutil.Lookup(nil)),
		WithLogger(quietLogger()),
	)
	require.NoError(t, err)
	assert.Equal(t, []Tag{Flag, Env}, cfg.Tags())
}

func TestConfig_HelpFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, err := Config("-c", nil,
		WithArgs("--help"),
		WithFS(powersFS(t)),
		WithLookupEnv(testutil.Lookup(nil)),
		WithLogger(quietLogger()),
		WithOutput(&out),
	)
	require.NoError(t, err)

	_, ok := cfg.Grab().Flag("-name").Require("Name")
	assert.False(t, ok)

	assert.True(t, cfg.Help("Prog"))
	assert.True(t, strings.HasPrefix(out.String(), "Prog\nMissing:\nName:\n\tFlag:-name,\n"))
}
