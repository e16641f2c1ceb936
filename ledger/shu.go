package ledger

import (
	"errors"
	"fmt"
	"math"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

// ErrInvalidAllocationConfig is returned when the six allocation percentages
// do not sum to 100.
var ErrInvalidAllocationConfig = errors.New("allocation percentages must sum to 100")

// allocationTolerance absorbs float noise when checking the percentage sum.
const allocationTolerance = 0.01

// Allocation is the SHU split across the six statutory categories. The
// amounts always sum to exactly the allocated net income.
type Allocation struct {
	JasaModal      int64 `json:"jasaModal"`
	CadanganModal  int64 `json:"cadanganModal"`
	JasaPengurus   int64 `json:"jasaPengurus"`
	DanaPendidikan int64 `json:"danaPendidikan"`
	Infaq          int64 `json:"infaq"`
	JasaTransaksi  int64 `json:"jasaTransaksi"`
}

// Total returns the sum of all category amounts.
func (a Allocation) Total() int64 {
	return a.JasaModal + a.CadanganModal + a.JasaPengurus +
		a.DanaPendidikan + a.Infaq + a.JasaTransaksi
}

// Allocate splits netIncome across the allocation categories of cfg. Shares
// are truncated to whole rupiah; the truncation remainder goes to the
// category with the largest percentage so the total matches netIncome
// exactly.
func Allocate(netIncome int64, cfg models.SHUConfig) (Allocation, error) {
	pcts := cfg.Allocations
	if math.Abs(pcts.Sum()-100) > allocationTolerance {
		return Allocation{}, fmt.Errorf("%w (got %.2f)", ErrInvalidAllocationConfig, pcts.Sum())
	}

	var alloc Allocation
	shares := []struct {
		pct float64
		out *int64
	}{
		{pcts.JasaModal, &alloc.JasaModal},
		{pcts.CadanganModal, &alloc.CadanganModal},
		{pcts.JasaPengurus, &alloc.JasaPengurus},
		{pcts.DanaPendidikan, &alloc.DanaPendidikan},
		{pcts.Infaq, &alloc.Infaq},
		{pcts.JasaTransaksi, &alloc.JasaTransaksi},
	}

	largest := 0
	var allocated int64
	for i, s := range shares {
		*s.out = int64(float64(netIncome) * s.pct / 100)
		allocated += *s.out
		if s.pct > shares[largest].pct {
			largest = i
		}
	}
	*shares[largest].out += netIncome - allocated
	return alloc, nil
}

// MemberShares splits the jasa transaksi pool across members in proportion
// to their SHU-eligible savings. Members with non-positive eligible savings
// receive nothing; when nobody has eligible savings the pool stays
// undistributed.
func MemberShares(pool int64, eligibleByMember map[string]int64) map[string]int64 {
	var total int64
	for _, v := range eligibleByMember {
		if v > 0 {
			total += v
		}
	}
	shares := make(map[string]int64, len(eligibleByMember))
	if total <= 0 {
		return shares
	}
	for id, v := range eligibleByMember {
		if v > 0 {
			shares[id] = pool * v / total
		}
	}
	return shares
}
