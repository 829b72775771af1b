package handler

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=viewer developer manager l1_admin l0_admin"`
}
