package request

type ListBookingsQuery struct {
	Limit int    `form:"limit"`
	After string `form:"after"`
}

type BookingPath struct {
	Kind      string `uri:"kind" binding:"required,booking_kind"`
	Reference string `uri:"reference" binding:"required,max=20"`
}

type DraftPath struct {
	Kind       string `uri:"kind" binding:"required,booking_kind"`
	ResourceID string `uri:"resourceId" binding:"required,uuid"`
}

type IDPath struct {
	ID string `uri:"id" binding:"required,uuid"`
}
