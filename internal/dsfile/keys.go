package dsfile

// AcceptedLevels returns, for each required path level of the node, the set
// of literal names the matcher accepts at that level: the canonical key plus
// any aliases. Levels belonging to a flattened group are omitted entirely,
// including the node's own level when the node itself is a flattened group.
//
// ancestors[0] is the document root and contributes no level.
func AcceptedLevels(keys []string, cmd *Command, ancestors []*Group) [][]string {
	levels := make([][]string, 0, len(keys))

	for i := 1; i < len(ancestors); i++ {
		group := ancestors[i]
		if group.Mode == ModeFlattened {
			continue
		}
		level := make([]string, 0, 1+len(group.Aliases))
		level = append(level, keys[i-1])
		level = append(level, group.Aliases...)
		levels = append(levels, level)
	}

	if cmd.Kind == KindGroup && cmd.Group.Mode == ModeFlattened {
		return levels
	}

	aliases := cmd.Aliases()
	level := make([]string, 0, 1+len(aliases))
	level = append(level, keys[len(keys)-1])
	level = append(level, aliases...)
	return append(levels, level)
}
