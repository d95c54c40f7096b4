package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

var roleLevels = map[Role]int{
	RoleCustomer: 1,
	RoleStaff:    2,
	RoleAdmin:    3,
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

func (r Role) AtLeast(min Role) bool {
	have, okHave := roleLevels[r]
	need, okNeed := roleLevels[min]
	return okHave && okNeed && have >= need
}

func (r Role) IsStaff() bool {
	return r.AtLeast(RoleStaff)
}
