package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL derives the default avatar for an email address:
// 200px, rated pg, with the "mystery man" fallback image.
func GravatarURL(email string) string {
	norm := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(norm))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&d=mm&r=pg", hex.EncodeToString(sum[:]))
}
