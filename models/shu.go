package models

// SHUAllocations is the percentage table splitting the yearly surplus across
// the six fixed allocation categories. Values must sum to 100.
type SHUAllocations struct {
	JasaModal      float64 `json:"jasaModal"`
	CadanganModal  float64 `json:"cadanganModal"`
	JasaPengurus   float64 `json:"jasaPengurus"`
	DanaPendidikan float64 `json:"danaPendidikan"`
	Infaq          float64 `json:"infaq"`
	JasaTransaksi  float64 `json:"jasaTransaksi"`
}

// Sum returns the total of all six percentages.
func (a SHUAllocations) Sum() float64 {
	return a.JasaModal + a.CadanganModal + a.JasaPengurus +
		a.DanaPendidikan + a.Infaq + a.JasaTransaksi
}

// SHUConfig holds the declared surplus for the period and the allocation table.
type SHUConfig struct {
	LabaUsaha   int64          `json:"labaUsaha"` // declared net operating surplus
	Allocations SHUAllocations `json:"allocations"`
}

// DefaultSHUConfig mirrors the cooperative's statutory allocation percentages.
func DefaultSHUConfig() SHUConfig {
	return SHUConfig{
		Allocations: SHUAllocations{
			JasaModal:      30,
			CadanganModal:  25,
			JasaPengurus:   15,
			DanaPendidikan: 5,
			Infaq:          5,
			JasaTransaksi:  20,
		},
	}
}
