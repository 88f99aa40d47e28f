package rbac

import (
	"github.com/casbin/casbin/v2"
)

// Role names carried in JWT claims and casbin policies.
const (
	RoleMaster  = "master"
	RolePlanner = "planner"
	RoleAdmin   = "admin"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
