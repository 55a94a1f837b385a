package domain

// MinVehicleYear is the oldest model year the registry accepts.
const MinVehicleYear = 1900

// Vehicle is a registered vehicle record. No uniqueness is enforced across
// name and brand; the store-assigned ID is the only identity.
type Vehicle struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}
