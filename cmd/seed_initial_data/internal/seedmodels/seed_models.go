package seedmodels

// SeedUser defines the structure for a user entry in the JSON seed file.
type SeedUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
