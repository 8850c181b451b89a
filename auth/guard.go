package auth

import (
	"sort"
	"strings"

	"biomedico/models"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Allow lets the request proceed unchanged.
	Allow Decision = iota
	// DenyUnauthenticated means no principal is present; callers
	// redirect to the login entry point.
	DenyUnauthenticated
	// DenyForbidden means the principal's role is not in the allowed
	// set, or an ownership rule failed.
	DenyForbidden
)

// RoleSet is a normalized set of allowed roles. Route declarations pass
// one or more role names and get a fixed set at the boundary.
type RoleSet map[string]struct{}

func NewRoleSet(roles ...string) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return set
}

func (s RoleSet) Contains(role string) bool {
	_, ok := s[role]
	return ok
}

// String lists the allowed roles for the forbidden notice, sorted for
// stable output.
func (s RoleSet) String() string {
	roles := make([]string, 0, len(s))
	for role := range s {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return strings.Join(roles, ", ")
}

// Decide is the authorization guard: given the current principal
// (nil when absent) and the allowed role set, it returns whether the
// request may proceed. Pure; no side effects.
func Decide(p *Principal, allowed RoleSet) Decision {
	if p == nil {
		return DenyUnauthenticated
	}
	if !allowed.Contains(p.Tipo) {
		return DenyForbidden
	}
	return Allow
}

// DecideOwnership extends Decide for self-service resources: a
// paciente-role principal may only act on the patient record owned by
// their own user id. Other roles fall through to the plain role check.
func DecideOwnership(p *Principal, allowed RoleSet, owningUserID *int64) Decision {
	if d := Decide(p, allowed); d != Allow {
		return d
	}
	if p.Tipo == models.RolPaciente {
		if owningUserID == nil || *owningUserID != p.ID {
			return DenyForbidden
		}
	}
	return Allow
}
