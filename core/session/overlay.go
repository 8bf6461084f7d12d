package session

// OverlayEnv reads through to a base environment but keeps every write in
// its own layer. Environ lists only the overlaid entries, which is exactly
// the delta the shell layer needs to evaluate.
type OverlayEnv struct {
	base  Env
	delta MapEnv
}

var _ Env = (*OverlayEnv)(nil)

// NewOverlayEnv creates an empty overlay on top of base.
func NewOverlayEnv(base Env) *OverlayEnv {
	return &OverlayEnv{base: base}
}

// Setenv implements Env.Setenv, writing to the overlay only.
func (o *OverlayEnv) Setenv(key, value string) {
	o.delta.Setenv(key, value)
}

// LookupEnv implements Env.LookupEnv, consulting the overlay before base.
func (o *OverlayEnv) LookupEnv(key string) (string, bool) {
	if val, ok := o.delta.LookupEnv(key); ok {
		return val, ok
	}
	return o.base.LookupEnv(key)
}

// Getenv implements Env.Getenv.
func (o *OverlayEnv) Getenv(key string) string {
	val, _ := o.LookupEnv(key)
	return val
}

// Environ implements Env.Environ. Only overlaid entries are listed; the
// inherited environment is already live in the caller's shell.
func (o *OverlayEnv) Environ() []string {
	return o.delta.Environ()
}
