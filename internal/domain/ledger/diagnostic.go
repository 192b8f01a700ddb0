package ledger

import (
	"fmt"

	"stockbook/internal/core/apperror"
)

// Diagnostic is a non-fatal finding attached to an aggregation result.
// A diagnostic never aborts a pass: the offending record or product code
// is skipped or zeroed and the rest of the computation stays valid.
type Diagnostic struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	RecordID    string `json:"recordId,omitempty"`
	ProductCode string `json:"productCode,omitempty"`
}

func dataFormat(recordID, field string) Diagnostic {
	return Diagnostic{
		Code:     apperror.CodeDataFormat,
		Message:  fmt.Sprintf("field %q is malformed; record skipped", field),
		RecordID: recordID,
	}
}

func orphanProductCode(code string) Diagnostic {
	return Diagnostic{
		Code:        apperror.CodeOrphanProductCode,
		Message:     "product code appears in sales but was never stocked in",
		ProductCode: code,
	}
}

func unknownAverageCost(code, message string) Diagnostic {
	return Diagnostic{
		Code:        apperror.CodeUnknownAverageCost,
		Message:     message,
		ProductCode: code,
	}
}
