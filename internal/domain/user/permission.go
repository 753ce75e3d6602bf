package user

type Permission string

const (
	// Attendance
	PermissionAttendanceClockOwn Permission = "attendance.clock_own"
	PermissionAttendanceViewOwn  Permission = "attendance.view_own"
	PermissionAttendanceViewAll  Permission = "attendance.view_all"
	PermissionAttendanceManage   Permission = "attendance.manage"

	// Reports
	PermissionReportsViewOwn Permission = "reports.view_own"
	PermissionReportsViewAll Permission = "reports.view_all"
	PermissionReportsExport  Permission = "reports.export"

	// Inventory
	PermissionInventoryView   Permission = "inventory.view"
	PermissionInventoryManage Permission = "inventory.manage"

	// User management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceClockOwn,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionReportsViewOwn,
		PermissionReportsViewAll,
		PermissionReportsExport,
		PermissionInventoryView,
		PermissionInventoryManage,
		PermissionUserManage,
	},
	RoleSupervisor: {
		PermissionAttendanceClockOwn,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionReportsViewOwn,
		PermissionReportsViewAll,
		PermissionReportsExport,
		PermissionInventoryView,
	},
	RoleWarehouse: {
		PermissionAttendanceClockOwn,
		PermissionAttendanceViewOwn,
		PermissionReportsViewOwn,
		PermissionInventoryView,
		PermissionInventoryManage,
	},
	RoleWorker: {
		PermissionAttendanceClockOwn,
		PermissionAttendanceViewOwn,
		PermissionReportsViewOwn,
	},
}

// HasPermission checks if a role grants a permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
