// utils/avatar.go
package utils

import "quickbite-backend/entity"

func BuildAvatarURL(user *entity.User) string {
	if user.AvatarSize > 0 {
		return "/profile/avatar"
	}
	return ""
}
