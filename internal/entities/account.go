package entities

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// Account is a login. The username is the primary key and the role is fixed
// when the account is created.
type Account struct {
	Username  string `gorm:"primaryKey;size:50" json:"username"`
	Password  string `gorm:"size:255" json:"-"`
	FirstName string `gorm:"size:50" json:"first_name"`
	LastName  string `gorm:"size:50" json:"last_name"`
	Email     string `gorm:"size:50" json:"email"`
	Role      Role   `gorm:"size:20" json:"role"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
