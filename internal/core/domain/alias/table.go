package alias

/*
Table is the mapping of alias names to command templates read from one
configuration file. It keeps the order in which names appear in the document.
A zero Table is empty and ready to use.
*/
type Table struct {
	entries []Alias
	index   map[string]int
}

// NewTable builds a Table from aliases in document order.
func NewTable(aliases ...Alias) Table {
	var t Table
	for _, a := range aliases {
		t.Set(a.Name, a.Command)
	}
	return t
}

// Set stores command under name. Redefining a name replaces its command but
// keeps the position of the first definition.
func (t *Table) Set(name, command string) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[name]; ok {
		t.entries[i].Command = command
		return
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, Alias{Name: name, Command: command})
}

// Lookup returns the command template for name.
func (t Table) Lookup(name string) (string, bool) {
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.entries[i].Command, true
}

// Len returns the number of aliases.
func (t Table) Len() int {
	return len(t.entries)
}

// Aliases returns a copy of the aliases in document order.
func (t Table) Aliases() []Alias {
	out := make([]Alias, len(t.entries))
	copy(out, t.entries)
	return out
}
