package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/estimators/internal/domain"
)

var csvHeader = []string{
	"Name", "Kind",
	"MonthlyPremium", "AnnualPremium", "CoverageIncluded",
	"GrossPerCheck", "NetPerCheck", "MonthlyNet", "AnnualNet", "EffectiveTaxRate",
	"Urgency",
}

// CSVFormatter writes one row per estimate. Columns that do not apply to an
// estimate's kind are left empty.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, res := range report.Results {
		row := make([]string, len(csvHeader))
		row[0] = res.Name
		row[1] = string(res.Kind)
		if p := res.Premium; p != nil {
			row[2] = p.MonthlyPremium.StringFixed(0)
			row[3] = p.AnnualPremium.StringFixed(0)
			row[4] = strconv.Itoa(p.IncludedCount()) + "/" + strconv.Itoa(len(p.CoverageDetails))
		}
		if p := res.Payroll; p != nil {
			row[5] = p.GrossPayPerCheck.StringFixed(2)
			row[6] = p.NetPayPerCheck.StringFixed(2)
			row[7] = p.MonthlyNetPay.StringFixed(2)
			row[8] = p.AnnualNetPay.StringFixed(2)
			row[9] = p.EffectiveTaxRate.StringFixed(2)
		}
		if a := res.Advisory; a != nil {
			row[10] = string(a.UrgencyLevel)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
