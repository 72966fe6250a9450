package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodQueryBy selects which job date column a billing period query filters on.
type PeriodQueryBy string

const (
	QueryByShipDate  PeriodQueryBy = "ship_date"
	QueryByEnterDate PeriodQueryBy = "enter_date"
)

// ReservedAccountNos are house account numbers that are never billed.
var ReservedAccountNos = []string{"1", "2", "3"}

// JobRecord is one shipped, billable optical job as fetched from the
// job-tracking database. Immutable once fetched.
type JobRecord struct {
	JobID        string          `json:"jobID"`
	AccountNo    string          `json:"accountNo"`
	EnterDate    *time.Time      `json:"enterDate"` // nil renders as "N/A"
	ShipDate     *time.Time      `json:"shipDate"`  // nil renders as "N/A"
	PatientName  string          `json:"patientName"`
	FrameName    string          `json:"frameName"`
	FrameItemNo  string          `json:"frameItemNo"`
	FrameNameAlt string          `json:"frameNameAlt"`
	Comment      string          `json:"comment"`
	LensPrice    decimal.Decimal `json:"lensPrice"`
	FramePrice   decimal.Decimal `json:"framePrice"`
	Sales        decimal.Decimal `json:"sales"` // net sales amount, always > 0
}

// FrameDisplay picks the frame description shown on summary sheets. Stock and
// frame-only jobs carry the real description in the order comment; otherwise
// jobs without a frame item number use the catalog name from the job query.
func (j JobRecord) FrameDisplay() string {
	lower := strings.ToLower(j.PatientName)
	if strings.Contains(lower, "stock") || strings.Contains(lower, "frame") {
		return j.Comment
	}
	if j.FrameItemNo == "" {
		return j.FrameNameAlt
	}
	return j.FrameName
}
