package probe

// Probes bundles the primitives a check may call.
type Probes struct {
	Runner   Runner
	Services Services
	Host     Host
}

// New returns the real primitives, with service queries going through runner.
func New(runner Runner) Probes {
	return Probes{
		Runner:   runner,
		Services: &Systemctl{Runner: runner},
		Host:     &RealHost{},
	}
}
