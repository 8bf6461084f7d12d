package session

import (
	"os"
	"strings"
)

// Class partitions identities by privilege for the single branch the
// initializer takes.
type Class int

const (
	// Standard is any identity other than uid 0.
	Standard Class = iota
	// Privileged is the administrative identity, uid 0.
	Privileged
)

// Identity describes the invoking user and process, read once at session
// start and immutable afterwards.
type Identity struct {
	// UID is the effective numeric user id of the process.
	UID int
	// Hostname is the short (non-domain-qualified) local hostname. May be
	// empty if the hostname couldn't be resolved; the prompt then has an
	// empty prefix.
	Hostname string
	// PID is the current process identifier, used to keep per-session
	// scratch paths unique.
	PID int
}

// Class returns Privileged for uid 0, Standard otherwise.
func (id Identity) Class() Class {
	if id.UID == 0 {
		return Privileged
	}
	return Standard
}

// CurrentIdentity reads the identity of the running process. Hostname
// resolution failure is tolerated and yields an empty hostname.
func CurrentIdentity() Identity {
	host, _ := os.Hostname()

	return Identity{
		UID:      os.Geteuid(),
		Hostname: ShortHostname(host),
		PID:      os.Getpid(),
	}
}

// ShortHostname strips the domain from a fully qualified hostname.
func ShortHostname(host string) string {
	if i := strings.IndexByte(host, '.'); i >= 0 {
		return host[:i]
	}
	return host
}
