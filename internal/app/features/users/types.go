// internal/app/features/users/types.go
package users

import "github.com/dalemusser/welfarehub/internal/domain/models"

type userInput struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	OrgID    string `json:"orgId"`
	IsActive *bool  `json:"isActive"`
	Password string `json:"password"`
}

type userPatchInput struct {
	OrgID    *string `json:"orgId"`
	Role     *string `json:"role"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password"`
}

type listResponse struct {
	Users []models.User `json:"users"`
}

type createdResponse struct {
	ID string `json:"id"`
}
