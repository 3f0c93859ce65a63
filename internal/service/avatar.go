package service

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL derives a profile-image URL from an email following the
// gravatar convention: md5 of the trimmed, lowercased address. Size 300,
// pg rating and the "mystery man" default image match what the storefront
// has always rendered.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=300&r=pg&d=mm", hash)
}
