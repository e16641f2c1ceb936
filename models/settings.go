package models

// Settings is the cooperative's profile shown on reports and letterheads.
type Settings struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// DefaultSettings returns the cooperative profile used before any setup.
func DefaultSettings() Settings {
	return Settings{
		Name:    "Koperasi Usaha Bersama",
		Email:   "admin@usaha-bersama.id",
		Address: "Jl. Koperasi No. 1, Jakarta Pusat, DKI Jakarta 10110",
		Phone:   "(021) 555-0123",
	}
}
