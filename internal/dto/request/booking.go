package request

type CreateBookingRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4"`
	RoomNumber string `json:"room_number" validate:"required"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

// ModifyBookingRequest retargets an existing booking. Status accepts any
// of the four states directly; this is the administrative override path
// and deliberately skips the transition checks of the dedicated
// check-in/check-out/cancel operations.
type ModifyBookingRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=Confirmed CheckedIn CheckedOut Cancelled"`
}

type AvailableRoomsRequest struct {
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}
