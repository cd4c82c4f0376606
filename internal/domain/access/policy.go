package access

// Role is the caller's effective privilege tier as seen by the API
// boundary. Ownership filtering on reads is applied by handlers; this
// table only answers allow/deny for the (role, resource, action) triad.
type Role string

const (
	RoleAnonymous     Role = "anonymous"
	RoleAuthenticated Role = "authenticated"
	RoleStaff         Role = "staff"
)

type Resource string

const (
	ResourceBooks      Resource = "books"
	ResourceBorrowings Resource = "borrowings"
	ResourcePayments   Resource = "payments"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionReturn Action = "return"
	ActionNotify Action = "notify"
)

type rule struct {
	resource Resource
	action   Action
}

// minRole maps each operation to the least privileged role allowed to
// perform it. Anything not listed is staff-only.
var minRole = map[rule]Role{
	{ResourceBooks, ActionRead}:   RoleAnonymous,
	{ResourceBooks, ActionCreate}: RoleStaff,
	{ResourceBooks, ActionUpdate}: RoleStaff,
	{ResourceBooks, ActionDelete}: RoleStaff,

	{ResourceBorrowings, ActionRead}:   RoleAuthenticated,
	{ResourceBorrowings, ActionCreate}: RoleAuthenticated,
	{ResourceBorrowings, ActionReturn}: RoleAuthenticated,
	{ResourceBorrowings, ActionNotify}: RoleStaff,

	{ResourcePayments, ActionRead}:   RoleAuthenticated,
	{ResourcePayments, ActionCreate}: RoleAuthenticated,
}

func rank(r Role) int {
	switch r {
	case RoleStaff:
		return 2
	case RoleAuthenticated:
		return 1
	default:
		return 0
	}
}

func Allowed(role Role, resource Resource, action Action) bool {
	min, ok := minRole[rule{resource, action}]
	if !ok {
		min = RoleStaff
	}
	return rank(role) >= rank(min)
}
