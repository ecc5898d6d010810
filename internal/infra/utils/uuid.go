package utils

import "github.com/google/uuid"

func GenerateUUID() string {
	return uuid.NewString()
}

// IsUUID reports whether s is a canonical, hyphenated UUID.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
