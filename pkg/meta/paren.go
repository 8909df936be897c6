package meta

import "fmt"

// ParenGroups splits a nested-parenthesis value such as
// "(a,b,c)(0:1:2:1)(0:3:4:1)" into the contents of each group. Several
// SpikeGLX tags (snsGeomMap, snsShankMap, imroTbl, muxTbl) share this
// encoding: a parenthesized header followed by one parenthesized entry
// per channel or group.
func ParenGroups(s string) ([]string, error) {
	var groups []string
	for i := 0; i < len(s); {
		if s[i] != '(' {
			return nil, fmt.Errorf("expected '(' at offset %d", i)
		}
		end := -1
		for j := i + 1; j < len(s); j++ {
			if s[j] == ')' {
				end = j
				break
			}
			if s[j] == '(' {
				return nil, fmt.Errorf("unexpected '(' at offset %d", j)
			}
		}
		if end < 0 {
			return nil, fmt.Errorf("unclosed '(' at offset %d", i)
		}
		groups = append(groups, s[i+1:end])
		i = end + 1
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no parenthesized groups")
	}
	return groups, nil
}
