package voicing

// Type selects one of the eight voicing algorithms
type Type int

const (
	TypeClose Type = iota
	TypeDrop2
	TypeDrop3
	TypeOpen
	TypeRootlessA
	TypeRootlessB
	TypeQuartal
	TypeTriad
)

// GetTypeName returns the human-readable name for a voicing type
func GetTypeName(voicingType Type) string {
	names := map[Type]string{
		TypeClose:     "close",
		TypeDrop2:     "drop2",
		TypeDrop3:     "drop3",
		TypeOpen:      "open",
		TypeRootlessA: "rootlessA",
		TypeRootlessB: "rootlessB",
		TypeQuartal:   "quartal",
		TypeTriad:     "triad",
	}
	if name, exists := names[voicingType]; exists {
		return name
	}
	return "unknown"
}

// GetSupportedTypes returns a list of supported voicing type names
func GetSupportedTypes() []string {
	return []string{
		"close", "drop2", "drop3", "open",
		"rootlessA", "rootlessB", "quartal", "triad",
	}
}

// Context is the caller-owned voice-leading state: the last accepted voicing
// and its root. Exactly one Context exists per independent voice of the
// instrument, and only the owning caller mutates it, strictly after each
// successful voicing call.
type Context struct {
	PrevVoicing []int `json:"prev_voicing"`
	PrevRoot    int   `json:"prev_root"`
}

// HasPrevious reports whether the context carries a previous voicing
func (c *Context) HasPrevious() bool {
	return c != nil && len(c.PrevVoicing) > 0
}

// Update records an accepted voicing. Call only after the voicing has been
// accepted, never speculatively.
func (c *Context) Update(voicing []int, root int) {
	c.PrevVoicing = append(c.PrevVoicing[:0], voicing...)
	c.PrevRoot = ((root % 12) + 12) % 12
}

// Reset clears the context so voice leading restarts from scratch, e.g. on a
// manual key change.
func (c *Context) Reset() {
	c.PrevVoicing = c.PrevVoicing[:0]
	c.PrevRoot = 0
}
