package mapper

import (
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

// ToUserItem never exposes the password hash.
func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		OrganizationID: user.OrganizationID,
		DepartmentID:   copyString(user.DepartmentID),
		Role:           string(user.Role),
		AvatarURL:      copyString(user.AvatarURL),
		IsActive:       user.IsActive,
		LastLoginAt:    formatTimePtr(user.LastLoginAt),
		CreatedAt:      formatTime(user.CreatedAt),
		UpdatedAt:      formatTime(user.UpdatedAt),
	}
}

func ToLoginResponse(user domain.User, session domain.Session) dto.LoginResponse {
	return dto.LoginResponse{
		User:        ToUserItem(user),
		AccessToken: session.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   formatTime(session.ExpiresAt),
	}
}
