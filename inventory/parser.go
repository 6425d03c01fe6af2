package inventory

import (
	"strings"

	linereader "github.com/mitchellh/go-linereader"
)

// Parse reads Ansible INI inventory text, as produced by BuildText, back
// into an Inventory. Blank lines are skipped and host lines appearing before
// the first group header are ignored. Group and host order follow the text.
func Parse(text string) *Inventory {
	result := NewInventory()
	lr := linereader.New(strings.NewReader(text))

	group := ""
	for line := range lr.Ch {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			group = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			result.AddGroup(group)
			continue
		}
		if group == "" {
			continue
		}
		result.Append(group, line)
	}

	return result
}
