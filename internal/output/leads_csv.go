package output

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gregglawdallas/caseval/internal/domain"
)

// LeadsCSV renders the lead inbox as CSV, one row per lead, in the order
// given (callers list newest first).
func LeadsCSV(leads []domain.CalculatorLead) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"ID", "Timestamp", "Name", "Phone", "Source", "InjuryType", "MedicalBills", "LostWages", "FutureMedical", "OutOfPocket", "NetValuation", "Audit"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, lead := range leads {
		row := []string{
			lead.ID,
			lead.Timestamp.UTC().Format(time.RFC3339),
			lead.Name,
			lead.Phone,
			string(lead.CalculatorSource),
			lead.Inputs.InjuryType,
			lead.Inputs.MedicalBills.StringFixed(2),
			lead.Inputs.LostWages.StringFixed(2),
			lead.Inputs.FutureMedical.StringFixed(2),
			lead.Inputs.OutOfPocket.StringFixed(2),
			lead.Valuation.Net.StringFixed(2),
			lead.AIAudit,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
