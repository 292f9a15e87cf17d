package source

// Memory is a source backed by entries already in memory. Entries keep the
// order they were given in.
type Memory struct {
	name    string
	entries []Entry
}

// NewMemory returns a memory source named name.
func NewMemory(name string, entries []Entry) *Memory {
	return &Memory{name: normalizeName(name), entries: append([]Entry(nil), entries...)}
}

func (m *Memory) Name() string { return m.name }

func (m *Memory) Kind() Kind { return KindMemory }

func (m *Memory) Entries() ([]Entry, error) {
	return append([]Entry(nil), m.entries...), nil
}
