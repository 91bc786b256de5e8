package request

type CreateRoomRequest struct {
	Type  string  `json:"type" validate:"required,oneof=Standard Deluxe Suite"`
	Price float64 `json:"price" validate:"gte=0"`
}

// UpdateRoomRequest edits room details. Status only accepts the manual
// operator states: Occupied is owned by the booking lifecycle and cannot
// be set here.
type UpdateRoomRequest struct {
	Type   *string  `json:"type,omitempty" validate:"omitempty,oneof=Standard Deluxe Suite"`
	Price  *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status *string  `json:"status,omitempty" validate:"omitempty,oneof=Available Maintenance"`
}
