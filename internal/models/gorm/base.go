package gorm

import "github.com/google/uuid"

// ensureID assigns a random UUID when the caller did not supply one.
// Users keep the identity provider's subject as their ID.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
