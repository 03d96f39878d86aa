package planner

// SetNameGenerator replaces the scratch name generator.
func (p *Planner) SetNameGenerator(gen func() string) {
	p.newName = gen
}
