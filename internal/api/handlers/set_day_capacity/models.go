package set_day_capacity

// SetDayCapacityRequest HTTP request model
type SetDayCapacityRequest struct {
	Capacity int `json:"capacity"`
}
