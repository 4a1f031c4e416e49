package auth

import "github.com/sportsmgr/club-service/internal/domain"

// Resource names a backend-managed entity type guarded by permissions.
type Resource string

const (
	ResourceTeams       Resource = "teams"
	ResourcePlayers     Resource = "players"
	ResourceMatches     Resource = "matches"
	ResourceTactics     Resource = "tactics"
	ResourceStatistics  Resource = "statistics"
	ResourcePerformance Resource = "performance"
)

// Action names an operation on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AllResources lists every guarded resource in menu order.
func AllResources() []Resource {
	return []Resource{
		ResourceTeams,
		ResourcePlayers,
		ResourceMatches,
		ResourceTactics,
		ResourceStatistics,
		ResourcePerformance,
	}
}

type actionSet map[Action]struct{}

func actions(list ...Action) actionSet {
	set := make(actionSet, len(list))
	for _, a := range list {
		set[a] = struct{}{}
	}
	return set
}

// permissionTable is the single source of truth for role capabilities.
// The server middleware and the dashboard gate both read it, so the two
// enforcement points cannot drift apart.
var permissionTable = map[domain.Role]map[Resource]actionSet{
	domain.RoleSuperAdmin: {
		ResourceTeams:       actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete),
		ResourcePlayers:     actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete),
		ResourceMatches:     actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete),
		ResourceTactics:     actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete),
		ResourceStatistics:  actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete),
		ResourcePerformance: actions(ActionRead),
	},
	domain.RoleClubAdmin: {
		ResourceTeams:       actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete),
		ResourcePlayers:     actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete),
		ResourceMatches:     actions(ActionCreate, ActionRead, ActionUpdate, ActionDelete),
		ResourceStatistics:  actions(ActionRead),
		ResourcePerformance: actions(ActionRead),
	},
	domain.RoleCoach: {
		ResourceTeams:       actions(ActionRead),
		ResourcePlayers:     actions(ActionCreate, ActionRead, ActionUpdate),
		ResourceMatches:     actions(ActionCreate, ActionRead, ActionUpdate),
		ResourceTactics:     actions(ActionCreate, ActionRead, ActionUpdate),
		ResourceStatistics:  actions(ActionRead),
		ResourcePerformance: actions(ActionRead),
	},
	domain.RoleAnalyst: {
		ResourceTeams:       actions(ActionRead),
		ResourcePlayers:     actions(ActionRead),
		ResourceMatches:     actions(ActionRead),
		ResourceTactics:     actions(ActionRead),
		ResourceStatistics:  actions(ActionCreate, ActionRead, ActionUpdate),
		ResourcePerformance: actions(ActionRead),
	},
	domain.RolePlayer: {
		ResourcePlayers:    actions(ActionRead),
		ResourceMatches:    actions(ActionRead),
		ResourceStatistics: actions(ActionRead),
	},
}

// Allowed reports whether role may perform action on resource. It is a pure
// lookup: the same inputs always yield the same verdict, and unknown roles
// or resources are denied rather than rejected with an error.
func Allowed(role domain.Role, resource Resource, action Action) bool {
	byResource, ok := permissionTable[role]
	if !ok {
		return false
	}
	set, ok := byResource[resource]
	if !ok {
		return false
	}
	_, ok = set[action]
	return ok
}

// ReadableResources returns the resources role may read, in menu order.
func ReadableResources(role domain.Role) []Resource {
	var out []Resource
	for _, res := range AllResources() {
		if Allowed(role, res, ActionRead) {
			out = append(out, res)
		}
	}
	return out
}
