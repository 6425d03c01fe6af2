package inventory

// Inventory is an insertion-ordered mapping from group identifier to the
// host entries belonging to that group. Group order reflects the order in
// which groups were first seen; host entries keep append order and may
// repeat, nothing is deduplicated.
type Inventory struct {
	order  []string
	groups map[string][]string
}

// NewInventory returns an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{
		groups: make(map[string][]string),
	}
}

// AddGroup registers group with no entries. Registering an existing group
// keeps its original position.
func (i *Inventory) AddGroup(group string) {
	if _, ok := i.groups[group]; !ok {
		i.order = append(i.order, group)
		i.groups[group] = make([]string, 0)
	}
}

// Append adds a host entry to group, creating the group when first seen.
func (i *Inventory) Append(group, entry string) {
	i.AddGroup(group)
	i.groups[group] = append(i.groups[group], entry)
}

// Groups returns the group identifiers in insertion order.
func (i *Inventory) Groups() []string {
	out := make([]string, len(i.order))
	copy(out, i.order)
	return out
}

// Hosts returns the host entries of group, nil when the group does not
// exist.
func (i *Inventory) Hosts(group string) []string {
	entries, ok := i.groups[group]
	if !ok {
		return nil
	}
	out := make([]string, len(entries))
	copy(out, entries)
	return out
}

// Len returns the number of groups.
func (i *Inventory) Len() int {
	return len(i.order)
}
