package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Powerful bool
}
