package types

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// VM represents a single provisioned virtual machine.
// The spec is the machine's full nested definition as materialized by the
// provisioner; grouping key paths are resolved against it.
type VM struct {
	name string
	ip   string
	spec map[string]interface{}
}

const (
	// attribute names:
	vmAttributeIP = "ip"
)

// NewVM returns a VM record with the given name, address and spec.
func NewVM(name, ip string, spec map[string]interface{}) *VM {
	return &VM{
		name: name,
		ip:   ip,
		spec: spec,
	}
}

// NewVMFromMap reads a VM record from a raw layout mapping. The mapping is
// retained whole as the VM spec; the ip attribute is required.
func NewVMFromMap(name string, raw map[string]interface{}) (*VM, error) {
	var decoded struct {
		IP string `mapstructure:"ip"`
	}
	if err := mapstructure.Decode(raw, &decoded); err != nil {
		return nil, errors.Wrapf(err, "vm '%s': malformed layout", name)
	}
	if decoded.IP == "" {
		return nil, errors.Errorf("vm '%s': layout has no %s", name, vmAttributeIP)
	}
	return NewVM(name, decoded.IP, raw), nil
}

// Name returns the stable VM identifier.
func (v *VM) Name() string {
	return v.name
}

// IP returns the VM network address.
func (v *VM) IP() string {
	return v.ip
}

// Spec returns the VM's nested definition. Callers must not mutate it.
func (v *VM) Spec() map[string]interface{} {
	return v.spec
}
