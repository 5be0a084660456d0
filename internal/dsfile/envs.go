package dsfile

import "github.com/naoray/ds/internal/envset"

// ResolveEnvs merges the environment definitions visible at a node. The
// node's own definitions win, then each ancestor's nearest-first; a name
// already merged is never replaced by a farther definition. The default
// environment comes from the nearest source that sets one.
func ResolveEnvs(cmd *Command, ancestors []*Group) (map[string]*envset.Def, string) {
	merged := make(map[string]*envset.Def)
	defaultName := ""

	insert := func(envs map[string]*envset.Def, def string) {
		for name, env := range envs {
			if _, ok := merged[name]; !ok {
				merged[name] = env
			}
		}
		if defaultName == "" && def != "" {
			defaultName = def
		}
	}

	switch cmd.Kind {
	case KindConfig:
		insert(cmd.Config.Envs, cmd.Config.DefaultEnv)
	case KindGroup:
		insert(cmd.Group.Envs, cmd.Group.DefaultEnv)
	}

	for i := len(ancestors) - 1; i >= 0; i-- {
		insert(ancestors[i].Envs, ancestors[i].DefaultEnv)
	}

	return merged, defaultName
}
