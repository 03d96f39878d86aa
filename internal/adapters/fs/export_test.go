package fs

// NewScratchWithNames creates a Scratch drawing directory names from next.
func NewScratchWithNames(next func() string) *Scratch {
	return &Scratch{newName: next}
}
