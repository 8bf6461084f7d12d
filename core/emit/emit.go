// Package emit renders a finalized session environment as shell source the
// interactive shell layer can eval at login.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/sessiontools/loginenv/core/session"
)

// Flavor selects the syntax of the emitted shell source.
type Flavor string

const (
	// Sh is Bourne-style syntax (sh, bash, zsh).
	Sh Flavor = "sh"
	// Csh is C-shell-style syntax (csh, tcsh).
	Csh Flavor = "csh"
)

// ParseFlavor converts a user-supplied flavor name.
func ParseFlavor(name string) (Flavor, error) {
	switch Flavor(name) {
	case Sh:
		return Sh, nil
	case Csh:
		return Csh, nil
	default:
		return "", fmt.Errorf("unknown shell flavor %q (want %q or %q)", name, Sh, Csh)
	}
}

// Render writes shell source that reproduces env and res when evaluated.
// Variables come out sorted; the prompt is assigned but never exported.
func Render(w io.Writer, flavor Flavor, env session.Env, res session.Result) error {
	for _, entry := range env.Environ() {
		split := strings.SplitN(entry, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}

		var err error
		switch flavor {
		case Csh:
			_, err = fmt.Fprintf(w, "setenv %s %s\n", key, quote(value))
		default:
			_, err = fmt.Fprintf(w, "export %s=%s\n", key, quote(value))
		}
		if err != nil {
			return err
		}
	}

	// csh has no portable equivalent of set -o, so the edit mode is a
	// Bourne-only directive.
	if flavor == Sh && res.EditMode != "" {
		if _, err := fmt.Fprintf(w, "set -o %s\n", res.EditMode); err != nil {
			return err
		}
	}

	switch flavor {
	case Csh:
		_, err := fmt.Fprintf(w, "set prompt = %s\n", quote(res.Prompt))
		return err
	default:
		_, err := fmt.Fprintf(w, "PS1=%s\n", quote(res.Prompt))
		return err
	}
}

// quote single-quotes a value for both sh and csh, closing and reopening the
// quotes around embedded single quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
