package constants

// Permissions carried in the "permissions" claim of API tokens.
const (
	PermTransportRead  = "tms.transport.read"
	PermTransportWrite = "tms.transport.write"
	PermSuperAdminFull = "tms.super-admin.full-permit"
)

// AdminPermissions pass every permission check.
var AdminPermissions = []string{
	PermSuperAdminFull,
}
