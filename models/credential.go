package models

// Credential is used for HTTP basic auth against the node.
type Credential struct {
	Username string
	Password string
}
