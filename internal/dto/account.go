package dto

import "github.com/tamicaires/fin2couple-api/internal/models"

type CreateAccountRequest struct {
	Name    string  `json:"name"`
	OwnerID *string `json:"owner_id,omitempty"`
}

type AccountResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	OwnerID *string `json:"owner_id,omitempty"`
	IsJoint bool    `json:"is_joint"`
}

func NewAccountResponse(a *models.Account) AccountResponse {
	resp := AccountResponse{
		ID:      a.ID.String(),
		Name:    a.Name,
		IsJoint: a.IsJoint(),
	}
	if a.OwnerID != nil {
		owner := a.OwnerID.String()
		resp.OwnerID = &owner
	}
	return resp
}
