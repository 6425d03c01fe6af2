package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lago-project/lago-ansible/types"
)

// DefaultGroupingKeys are the spec paths used to derive groups when the
// caller does not supply any.
var DefaultGroupingKeys = []string{"vm-type", "groups", "vm-provider"}

// Builder derives Ansible inventories from the VMs of a single prefix. It
// holds no state besides the prefix reference; every call assembles a fresh
// inventory from the current VM records.
type Builder struct {
	prefix *types.Prefix
}

// NewBuilder returns a Builder over the given prefix.
func NewBuilder(prefix *types.Prefix) *Builder {
	return &Builder{
		prefix: prefix,
	}
}

// Build assembles an inventory by resolving every grouping key against every
// VM spec. keys defaults to DefaultGroupingKeys when empty. A VM joins the
// group "{key}={value}" for each key resolving to a scalar and one group per
// element for keys resolving to a sequence; keys resolving to nil are
// skipped.
func (b *Builder) Build(keys []string) *Inventory {
	if len(keys) == 0 {
		keys = DefaultGroupingKeys
	}

	result := NewInventory()
	for _, vm := range b.prefix.VMs() {
		entry := b.hostEntry(vm)
		for _, key := range keys {
			value := ResolveKey(key, vm.Spec())
			if value == nil {
				continue
			}
			if elements, ok := value.([]interface{}); ok {
				for _, element := range elements {
					result.Append(fmt.Sprintf("%s=%v", key, element), entry)
				}
				continue
			}
			result.Append(fmt.Sprintf("%s=%v", key, value), entry)
		}
	}

	return result
}

// BuildText renders the inventory as Ansible INI text: a [group] header per
// group in build order, followed by that group's host entries sorted
// lexicographically. Group order itself is not sorted; it preserves VM and
// key iteration order.
func (b *Builder) BuildText(keys []string) string {
	result := b.Build(keys)
	lines := make([]string, 0, result.Len())
	for _, group := range result.Groups() {
		lines = append(lines, fmt.Sprintf("[%s]", group))
		hosts := result.Hosts(group)
		sort.Strings(hosts)
		lines = append(lines, hosts...)
	}
	return strings.Join(lines, "\n")
}

func (b *Builder) hostEntry(vm *types.VM) string {
	return fmt.Sprintf(
		"%s ansible_host=%s ansible_ssh_private_key_file=%s",
		vm.Name(),
		vm.IP(),
		b.prefix.Paths().SSHIdentity(),
	)
}
