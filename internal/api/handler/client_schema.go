package handler

type createClientRequest struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Company        string  `json:"company"`
	Status         string  `json:"status" validate:"omitempty,oneof=prospect active inactive on_hold"`
	AssignedUserID *string `json:"assigned_user_id"`
	Notes          string  `json:"notes"`
}

// assignRequest carries the new owner for a client. A JSON null (or absent)
// assigned_user_id unassigns the client.
type assignRequest struct {
	AssignedUserID *string `json:"assigned_user_id"`
}
