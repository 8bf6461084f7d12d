// Package session computes the login-session environment: locale and tool
// defaults, privileged-identity overrides, the prompt string, and the
// secondary init file signal for the interactive shell layer.
package session
