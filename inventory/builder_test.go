package inventory

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lago-project/lago-ansible/types"
)

const testSSHIdentity = "/prefix/id_rsa"

func testPrefix(vms ...*types.VM) *types.Prefix {
	return types.NewPrefix(vms, types.NewPaths(testSSHIdentity))
}

func testEntry(name, ip string) string {
	return name + " ansible_host=" + ip + " ansible_ssh_private_key_file=" + testSSHIdentity
}

func TestBuildScalarAndSequenceValues(t *testing.T) {
	prefix := testPrefix(
		types.NewVM("vm1", "1.1.1.1", map[string]interface{}{
			"vm-type": "x",
		}),
		types.NewVM("vm2", "1.1.1.2", map[string]interface{}{
			"vm-type": []interface{}{"x", "y"},
		}),
	)

	result := NewBuilder(prefix).Build([]string{"vm-type"})

	wantGroups := []string{"vm-type=x", "vm-type=y"}
	if !reflect.DeepEqual(result.Groups(), wantGroups) {
		t.Fatalf("groups = %v, want %v", result.Groups(), wantGroups)
	}
	wantX := []string{testEntry("vm1", "1.1.1.1"), testEntry("vm2", "1.1.1.2")}
	if !reflect.DeepEqual(result.Hosts("vm-type=x"), wantX) {
		t.Fatalf("vm-type=x hosts = %v, want %v", result.Hosts("vm-type=x"), wantX)
	}
	wantY := []string{testEntry("vm2", "1.1.1.2")}
	if !reflect.DeepEqual(result.Hosts("vm-type=y"), wantY) {
		t.Fatalf("vm-type=y hosts = %v, want %v", result.Hosts("vm-type=y"), wantY)
	}
}

func TestBuildDefaultGroupingKeys(t *testing.T) {
	prefix := testPrefix(
		types.NewVM("vm1", "1.1.1.1", map[string]interface{}{
			"vm-type":     "default",
			"groups":      []interface{}{"db"},
			"vm-provider": "local-libvirt",
		}),
	)

	result := NewBuilder(prefix).Build(nil)

	wantGroups := []string{
		"vm-type=default",
		"groups=db",
		"vm-provider=local-libvirt",
	}
	if !reflect.DeepEqual(result.Groups(), wantGroups) {
		t.Fatalf("groups = %v, want %v", result.Groups(), wantGroups)
	}
}

func TestBuildSkipsUnresolvedKeys(t *testing.T) {
	prefix := testPrefix(
		types.NewVM("vm1", "1.1.1.1", map[string]interface{}{
			"vm-type": "default",
		}),
		types.NewVM("vm2", "1.1.1.2", map[string]interface{}{}),
	)

	result := NewBuilder(prefix).Build([]string{"vm-type", "groups"})

	wantGroups := []string{"vm-type=default"}
	if !reflect.DeepEqual(result.Groups(), wantGroups) {
		t.Fatalf("groups = %v, want %v", result.Groups(), wantGroups)
	}
	if got := result.Hosts("vm-type=default"); len(got) != 1 {
		t.Fatalf("expected vm2 excluded from every group, got %v", got)
	}
}

func TestBuildNestedGroupingKey(t *testing.T) {
	prefix := testPrefix(
		types.NewVM("vm1", "1.1.1.1", map[string]interface{}{
			"disks": []interface{}{
				map[string]interface{}{"format": "qcow2"},
			},
		}),
	)

	result := NewBuilder(prefix).Build([]string{"disks/0/format"})

	wantGroups := []string{"disks/0/format=qcow2"}
	if !reflect.DeepEqual(result.Groups(), wantGroups) {
		t.Fatalf("groups = %v, want %v", result.Groups(), wantGroups)
	}
}

func TestBuildKeepsDuplicateEntries(t *testing.T) {
	prefix := testPrefix(
		types.NewVM("vm1", "1.1.1.1", map[string]interface{}{
			"groups": []interface{}{"db", "db"},
		}),
	)

	result := NewBuilder(prefix).Build([]string{"groups"})

	want := []string{testEntry("vm1", "1.1.1.1"), testEntry("vm1", "1.1.1.1")}
	if !reflect.DeepEqual(result.Hosts("groups=db"), want) {
		t.Fatalf("expected duplicate entries preserved, got %v", result.Hosts("groups=db"))
	}
}

func TestBuildTextSortsHostsWithinGroups(t *testing.T) {
	prefix := testPrefix(
		types.NewVM("host-b", "1.1.1.2", map[string]interface{}{
			"vm-type": "g",
		}),
		types.NewVM("host-a", "1.1.1.1", map[string]interface{}{
			"vm-type": "g",
		}),
	)

	text := NewBuilder(prefix).BuildText([]string{"vm-type"})

	want := strings.Join([]string{
		"[vm-type=g]",
		testEntry("host-a", "1.1.1.1"),
		testEntry("host-b", "1.1.1.2"),
	}, "\n")
	if text != want {
		t.Fatalf("text =\n%s\nwant\n%s", text, want)
	}
	if strings.HasSuffix(text, "\n") {
		t.Fatal("expected no trailing newline")
	}
}

func TestBuildTextPreservesGroupOrder(t *testing.T) {
	prefix := testPrefix(
		types.NewVM("vm1", "1.1.1.1", map[string]interface{}{
			"vm-type": "zzz",
			"groups":  []interface{}{"aaa"},
		}),
	)

	text := NewBuilder(prefix).BuildText(nil)

	// groups are emitted in build order, only host lines are sorted
	if !strings.HasPrefix(text, "[vm-type=zzz]") {
		t.Fatalf("expected group order to follow key order, got:\n%s", text)
	}
	if strings.Index(text, "[vm-type=zzz]") > strings.Index(text, "[groups=aaa]") {
		t.Fatalf("expected vm-type group before groups group, got:\n%s", text)
	}
}

func TestBuildIsStateless(t *testing.T) {
	prefix := testPrefix(
		types.NewVM("vm1", "1.1.1.1", map[string]interface{}{
			"vm-type": "x",
		}),
	)
	b := NewBuilder(prefix)

	first := b.Build([]string{"vm-type"})
	second := b.Build([]string{"vm-type"})

	if !reflect.DeepEqual(first.Groups(), second.Groups()) {
		t.Fatal("expected repeated builds to be identical")
	}
	if len(second.Hosts("vm-type=x")) != 1 {
		t.Fatal("expected no accumulation across calls")
	}
}
