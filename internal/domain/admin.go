package domain

// Administrator is a back-office user. Administrators have no balance or
// vehicles; they operate the system on behalf of owners.
type Administrator struct {
	ID   string
	Name string

	secret string
}

func NewAdministrator(id, secret, name string) *Administrator {
	return &Administrator{ID: id, Name: name, secret: secret}
}

func (a *Administrator) CheckSecret(secret string) bool {
	return a.secret == secret
}
