package model

// UserStatus is the account state of a platform user.
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
	UserStatusBanned   UserStatus = "banned"
)

// ValidUserStatus reports whether s is a known account state.
func ValidUserStatus(s UserStatus) bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected, UserStatusBanned:
		return true
	}
	return false
}

// User is the management view of a platform user account.
type User struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone"`
	Photo       *string    `json:"photo"`
	Address     *string    `json:"address"`
	Role        string     `json:"role"`
	Status      UserStatus `json:"status"`
	CompanyName *string    `json:"companyName"`
	CreatedAt   string     `json:"createdAt"`
	UpdatedAt   string     `json:"updatedAt"`
}

// UserList is the paginated management listing of users.
type UserList struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}
