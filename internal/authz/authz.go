// Package authz is the single authorization table for the service. Route
// guards and record-level checks both consult it; handlers never compare
// role strings directly.
package authz

// Roles a user record can carry.
const (
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
	RoleTenant = "tenant"
	RoleStaff  = "staff"
)

// Named actions gated at the route level.
const (
	ActionManageUsers       = "users:manage"
	ActionCreateProperty    = "property:create"
	ActionModifyProperty    = "property:modify"
	ActionCreateLease       = "lease:create"
	ActionEndLease          = "lease:end"
	ActionRecordPayment     = "payment:record"
	ActionFileMaintenance   = "maintenance:file"
	ActionUpdateMaintenance = "maintenance:update"
	ActionViewReports       = "reports:view"
	ActionTenantProfile     = "tenant_profile:edit"
)

var permissions = map[string][]string{
	ActionManageUsers:       {RoleAdmin},
	ActionCreateProperty:    {RoleAdmin, RoleOwner},
	ActionModifyProperty:    {RoleAdmin, RoleOwner},
	ActionCreateLease:       {RoleAdmin, RoleOwner},
	ActionEndLease:          {RoleAdmin, RoleOwner},
	ActionRecordPayment:     {RoleAdmin, RoleOwner, RoleTenant},
	ActionFileMaintenance:   {RoleTenant},
	ActionUpdateMaintenance: {RoleAdmin, RoleStaff, RoleOwner},
	ActionViewReports:       {RoleAdmin, RoleOwner},
	ActionTenantProfile:     {RoleTenant},
}

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOwner, RoleTenant, RoleStaff:
		return true
	}
	return false
}

// Allowed reports whether role may perform the named action.
func Allowed(role, action string) bool {
	for _, r := range permissions[action] {
		if r == role {
			return true
		}
	}
	return false
}

// CanManageProperty reports whether the requester may mutate a property
// owned by ownerID. Admins are unrestricted; owners only touch their own.
func CanManageProperty(role string, userID, ownerID uint) bool {
	if role == RoleAdmin {
		return true
	}
	return role == RoleOwner && userID == ownerID
}

// CanViewLease reports whether the requester may read a lease, given the
// lease's tenant and the owning user of its property.
func CanViewLease(role string, userID, tenantID, propertyOwnerID uint) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleOwner:
		return userID == propertyOwnerID
	case RoleTenant:
		return userID == tenantID
	}
	return false
}

// CanDeleteUser rejects self-deletion; everything else is left to the
// users:manage route guard.
func CanDeleteUser(requesterID, targetID uint) bool {
	return requesterID != targetID
}
