package monthview

import "github.com/k1slee/worktime-tracking/internal/rbac"

// Scope is the caller's capability context, computed once per request
// from the authenticated role and actor id. The engine asks the scope
// instead of re-deriving role rules at every cell.
type Scope struct {
	actorID  string
	role     string
	readOnly bool
}

func NewScope(actorID, role string) Scope {
	return Scope{actorID: actorID, role: role}
}

// ReadOnly returns a copy of the scope with every edit capability
// withdrawn. The print form uses it to render the same view without
// editable cells.
func (s Scope) ReadOnly() Scope {
	s.readOnly = true
	return s
}

// CanEditEmployee reports whether the caller may edit cells of an
// employee supervised by masterID. Masters edit only their own
// employees; admins edit anyone; planners never edit cells directly.
func (s Scope) CanEditEmployee(masterID string) bool {
	if s.readOnly {
		return false
	}
	switch s.role {
	case rbac.RoleAdmin:
		return true
	case rbac.RoleMaster:
		return s.actorID == masterID
	default:
		return false
	}
}

// CanApprove reports whether the caller may approve records.
func (s Scope) CanApprove() bool {
	if s.readOnly {
		return false
	}
	return s.role == rbac.RolePlanner || s.role == rbac.RoleAdmin
}

// SeesAllMasters reports whether the caller may browse beyond their
// own employees. Masters are pinned to their own crew regardless of
// the requested filters.
func (s Scope) SeesAllMasters() bool {
	return s.role == rbac.RolePlanner || s.role == rbac.RoleAdmin
}
