package handler

// createVehicleRequest is the full payload for POST /vehicles.
type createVehicleRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// patchVehicleRequest carries a partial payload; only non-nil fields are
// merged onto the stored record.
type patchVehicleRequest struct {
	Name  *string `json:"name"`
	Brand *string `json:"brand"`
	Year  *int    `json:"year"`
}
