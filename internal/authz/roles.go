package authz

// Роль фиксируется при регистрации и кладётся в JWT —
// никаких проверок "есть ли профиль" по ходу запроса.
const (
	RolePatient   = 10
	RoleCaregiver = 20
)

func IsPatient(roleID int) bool {
	return roleID == RolePatient
}

func IsCaregiver(roleID int) bool {
	return roleID == RoleCaregiver
}
