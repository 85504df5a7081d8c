package entity

// Role is the closed set of account roles. Role is assigned at account
// creation and never changes afterwards.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleOwner Role = "OWNER"
	RoleUser  Role = "USER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleUser:
		return true
	}
	return false
}

// Operation is a permission-checked action exposed by the API.
type Operation string

const (
	OpCreateUser     Operation = "create_user"
	OpListUsers      Operation = "list_users"
	OpViewDashboard  Operation = "view_dashboard"
	OpCreateStore    Operation = "create_store"
	OpListStores     Operation = "list_stores"
	OpViewOwnRatings Operation = "view_own_ratings"
	OpBrowseStores   Operation = "browse_stores"
	OpRateStore      Operation = "rate_store"
)

// Allowed is the role -> operation policy table. It is a pure function:
// authentication has already happened by the time it is consulted.
func Allowed(role Role, op Operation) bool {
	switch role {
	case RoleAdmin:
		switch op {
		case OpCreateUser, OpListUsers, OpViewDashboard, OpCreateStore, OpListStores:
			return true
		}
	case RoleOwner:
		switch op {
		case OpViewOwnRatings:
			return true
		}
	case RoleUser:
		switch op {
		case OpBrowseStores, OpRateStore:
			return true
		}
	}
	return false
}
