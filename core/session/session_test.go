package session

import (
	"testing"

	"github.com/sessiontools/loginenv/core/config"
	"github.com/stretchr/testify/assert"
)

var (
	rootID = Identity{UID: 0, Hostname: "box", PID: 4242}
	userID = Identity{UID: 1000, Hostname: "box", PID: 4242}
)

func newInitializer() *Initializer {
	return New(config.Default())
}

func TestApplyLangFallback(t *testing.T) {
	cases := map[string]struct {
		environ []string
		want    string
	}{
		"unset":     {nil, "en_US.UTF-8"},
		"empty":     {[]string{"LANG="}, "en_US.UTF-8"},
		"posix-c":   {[]string{"LANG=C"}, "en_US.UTF-8"},
		"preserved": {[]string{"LANG=fr_FR.ISO8859-1"}, "fr_FR.ISO8859-1"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			env := NewMapEnvFromList(tc.environ)
			newInitializer().Apply(env, userID)

			assert.Equal(t, tc.want, env.Getenv(EnvLang))
		})
	}
}

func TestApplyToolDefaults(t *testing.T) {
	// Pre-existing values are overwritten, any identity.
	env := NewMapEnvFromList([]string{"EDITOR=vi", "PAGER=cat", "BLOCKSIZE=M"})
	newInitializer().Apply(env, userID)

	assert.Equal(t, "ee", env.Getenv(EnvEditor))
	assert.Equal(t, "less", env.Getenv(EnvPager))
	assert.Equal(t, "K", env.Getenv(EnvBlockSize))
}

func TestApplyPrivileged(t *testing.T) {
	env := NewMapEnv()
	res := newInitializer().Apply(env, rootID)

	assert.Equal(t, "more", env.Getenv(EnvPager))
	assert.Equal(t, "/root", env.Getenv(EnvHome))
	assert.Equal(t, "/sbin:/bin:/usr/sbin:/usr/bin:/usr/local/sbin:/usr/local/bin:/usr/local/fusion-io", env.Getenv(EnvPath))
	assert.Equal(t, "cons25", env.Getenv(EnvTerm))
	assert.Equal(t, "/tmp/.hist4242", env.Getenv(EnvHistFile))
	assert.Equal(t, "/root/.shrc", env.Getenv(EnvSecondaryInit))

	assert.Equal(t, "box# ", res.Prompt)
	assert.Equal(t, "emacs", res.EditMode)
	assert.Equal(t, "/root/.shrc", res.SecondaryInit)
}

func TestApplyPrivilegedKeepsTerm(t *testing.T) {
	env := NewMapEnvFromList([]string{"TERM=xterm-256color"})
	newInitializer().Apply(env, rootID)

	assert.Equal(t, "xterm-256color", env.Getenv(EnvTerm))
}

func TestApplyStandardTouchesNothingElse(t *testing.T) {
	base := NewMapEnvFromList([]string{
		"PATH=/opt/bin",
		"HOME=/home/alice",
		"TERM=vt100",
		"LANG=de_DE.UTF-8",
	})
	overlay := NewOverlayEnv(base)
	res := newInitializer().Apply(overlay, userID)

	assert.Equal(t, "box% ", res.Prompt)
	assert.Empty(t, res.EditMode)
	assert.Empty(t, res.SecondaryInit)

	// Only the unconditional tool defaults land in the delta.
	assert.Equal(t, []string{
		"BLOCKSIZE=K",
		"EDITOR=ee",
		"PAGER=less",
	}, overlay.Environ())

	assert.Equal(t, "/opt/bin", overlay.Getenv(EnvPath))
	assert.Equal(t, "/home/alice", overlay.Getenv(EnvHome))
	assert.Equal(t, "vt100", overlay.Getenv(EnvTerm))
	_, hasHist := overlay.LookupEnv(EnvHistFile)
	assert.False(t, hasHist)
	_, hasInit := overlay.LookupEnv(EnvSecondaryInit)
	assert.False(t, hasInit)
}

func TestApplyIdempotent(t *testing.T) {
	for _, id := range []Identity{rootID, userID} {
		env := NewMapEnvFromList([]string{"LANG=C", "TERM=vt100"})
		init := newInitializer()

		first := init.Apply(env, id)
		once := env.Environ()

		second := init.Apply(env, id)
		twice := env.Environ()

		assert.Equal(t, once, twice)
		assert.Equal(t, first, second)
	}
}

func TestApplyEmptyHostname(t *testing.T) {
	env := NewMapEnv()
	res := newInitializer().Apply(env, Identity{UID: 1000})

	assert.Equal(t, "% ", res.Prompt)
}

func TestHistoryFilePerProcess(t *testing.T) {
	init := newInitializer()

	a := NewMapEnv()
	init.Apply(a, Identity{UID: 0, Hostname: "box", PID: 100})
	b := NewMapEnv()
	init.Apply(b, Identity{UID: 0, Hostname: "box", PID: 200})

	assert.NotEqual(t, a.Getenv(EnvHistFile), b.Getenv(EnvHistFile))
}
