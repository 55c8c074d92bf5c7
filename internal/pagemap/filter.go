package pagemap

// FilterByLocale prunes a built page map to the nodes relevant to one target
// locale, preserving listing order.
//
// Per directory level: among same-named pages the target-locale variant wins,
// falling back to the default locale, then to the localeless file; at most one
// meta node survives, chosen by the same ranking; folders are filtered
// recursively and dropped when nothing survives inside them. The input tree is
// not modified.
func FilterByLocale(nodes []Node, target, defaultLocale string) []Node {
	rankOf := func(l string) int {
		switch l {
		case target:
			return 3
		case defaultLocale:
			return 2
		case "":
			return 1
		default:
			return 0
		}
	}

	type slot struct {
		node Node
		rank int
	}
	var order []string
	best := make(map[string]slot)
	keep := func(key string, n Node, rank int, lastWins bool) {
		cur, seen := best[key]
		if !seen {
			order = append(order, key)
		}
		if !seen || rank > cur.rank || (lastWins && rank == cur.rank) {
			best[key] = slot{node: n, rank: rank}
		}
	}

	for _, n := range nodes {
		switch v := n.(type) {
		case *Folder:
			children := FilterByLocale(v.Children, target, defaultLocale)
			if len(children) == 0 {
				continue
			}
			keep("f:"+v.Name, &Folder{Name: v.Name, Route: v.Route, Children: children}, 3, false)
		case *Page:
			r := rankOf(v.Locale)
			if r == 0 {
				continue
			}
			keep("p:"+v.Name, v, r, false)
		case *Meta:
			r := rankOf(v.Locale)
			if r == 0 {
				continue
			}
			keep("m:"+MetaFileName, v, r, true)
		}
	}

	out := make([]Node, 0, len(order))
	for _, k := range order {
		out = append(out, best[k].node)
	}
	return out
}
