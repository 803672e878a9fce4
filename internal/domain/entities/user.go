package entities

// User is the identity resolved by the external auth collaborator. The core
// treats ID as an opaque key and never inspects it.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
