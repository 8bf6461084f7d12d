package session

import (
	"path"
	"strconv"

	"github.com/sessiontools/loginenv/core/config"
)

// Environment variable names the initializer owns.
const (
	EnvLang      = "LANG"
	EnvEditor    = "EDITOR"
	EnvPager     = "PAGER"
	EnvBlockSize = "BLOCKSIZE"
	EnvPath      = "PATH"
	EnvTerm      = "TERM"
	EnvHome      = "HOME"
	EnvHistFile  = "HISTFILE"

	// EnvSecondaryInit names the per-session init file the interactive
	// shell sources after login setup completes.
	EnvSecondaryInit = "ENV"

	// localeC is the POSIX locale the fallback replaces.
	localeC = "C"
)

// Result carries the initializer outputs that are not environment entries.
type Result struct {
	// Prompt is the primary prompt string for the running shell. It is a
	// side channel, never exported to child processes.
	Prompt string

	// EditMode names the interactive line-editing mode for privileged
	// sessions. Opaque to this package; empty for standard identities.
	EditMode string

	// SecondaryInit is the path of the per-session init file the shell
	// layer should source, or empty when none applies. Existence of the
	// file is the shell layer's problem.
	SecondaryInit string
}

// Initializer computes the login-session environment once per session.
type Initializer struct {
	defaults *config.Configuration
}

// New creates an Initializer using the given defaults.
func New(defaults *config.Configuration) *Initializer {
	return &Initializer{defaults: defaults}
}

// Apply runs the one-shot session setup against env for the given identity.
//
// It is a single linear pass: locale default-fill, unconditional tool
// defaults, then one branch on privilege. Entries are only ever set, never
// deleted. Applying twice yields the same environment as applying once.
func (s *Initializer) Apply(env Env, id Identity) Result {
	d := s.defaults

	// LANG is filled only when missing, empty, or the bare POSIX locale.
	// A caller-supplied locale is kept as-is.
	if lang, ok := env.LookupEnv(EnvLang); !ok || lang == "" || lang == localeC {
		env.Setenv(EnvLang, d.FallbackLocale)
	}

	env.Setenv(EnvEditor, d.Editor)
	env.Setenv(EnvPager, d.Pager)
	env.Setenv(EnvBlockSize, d.BlockSize)

	res := Result{}
	switch id.Class() {
	case Privileged:
		p := d.Privileged

		res.EditMode = p.EditMode
		env.Setenv(EnvPath, p.PathString())
		if _, ok := env.LookupEnv(EnvTerm); !ok {
			env.Setenv(EnvTerm, p.Term)
		}
		env.Setenv(EnvPager, p.Pager)
		env.Setenv(EnvHome, p.Home)

		// Keyed on pid so concurrent privileged sessions sharing a
		// read-only home never contend on a single history file.
		env.Setenv(EnvHistFile, s.historyFile(id))

		res.SecondaryInit = path.Join(p.Home, p.InitFileName)
		env.Setenv(EnvSecondaryInit, res.SecondaryInit)

		res.Prompt = id.Hostname + d.PromptSuffixes.Privileged + " "

	default:
		res.Prompt = id.Hostname + d.PromptSuffixes.Standard + " "
	}

	return res
}

func (s *Initializer) historyFile(id Identity) string {
	p := s.defaults.Privileged
	return path.Join(p.HistoryDir, p.HistoryPrefix+strconv.Itoa(id.PID))
}
