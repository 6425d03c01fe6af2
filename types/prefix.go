package types

import (
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

// Prefix is a read-only view over a set of provisioned VMs and the
// filesystem paths associated with them.
type Prefix struct {
	vms   []*VM
	paths *Paths
}

const (
	prefixDefaultSSHIdentity = "~/.lago/default/id_rsa"
	// attribute names:
	prefixAttributeVMs = "vms"
)

type prefixLayout struct {
	SSHKey string                            `mapstructure:"ssh-key"`
	VMs    map[string]map[string]interface{} `mapstructure:"vms"`
}

// NewPrefix returns a Prefix over the given VM records and paths.
func NewPrefix(vms []*VM, paths *Paths) *Prefix {
	return &Prefix{
		vms:   vms,
		paths: paths,
	}
}

// LoadPrefix reads a prefix layout from a YAML file. VMs are ordered by name
// so that repeated loads of the same layout produce identical inventories.
func LoadPrefix(path string) (*Prefix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "prefix layout '%s' not readable", path)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "prefix layout '%s' is not valid YAML", path)
	}
	var layout prefixLayout
	if err := mapstructure.Decode(doc, &layout); err != nil {
		return nil, errors.Wrapf(err, "prefix layout '%s' is malformed", path)
	}
	if len(layout.VMs) == 0 {
		return nil, errors.Errorf("prefix layout '%s' defines no %s", path, prefixAttributeVMs)
	}

	names := make([]string, 0, len(layout.VMs))
	for name := range layout.VMs {
		names = append(names, name)
	}
	sort.Strings(names)

	vms := make([]*VM, 0, len(names))
	for _, name := range names {
		vm, err := NewVMFromMap(name, layout.VMs[name])
		if err != nil {
			return nil, err
		}
		vms = append(vms, vm)
	}

	sshIdentity := layout.SSHKey
	if sshIdentity == "" {
		sshIdentity = prefixDefaultSSHIdentity
	}
	return NewPrefix(vms, NewPaths(sshIdentity)), nil
}

// VMs returns all current VM records in deterministic order.
func (p *Prefix) VMs() []*VM {
	return p.vms
}

// Paths returns the prefix path provider.
func (p *Prefix) Paths() *Paths {
	return p.paths
}
