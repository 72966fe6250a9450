package domain

import (
	"fmt"
	"strconv"
)

// InvoiceStartLen is the fixed length of a category's invoice numbering code:
// a 4-character prefix followed by a 4-digit zero-padded sequence.
const InvoiceStartLen = 8

// InvoiceSeqMax is the largest sequence number the 4-digit suffix can carry.
const InvoiceSeqMax = 9999

// InvoiceCategory is a classification grouping of accounts (e.g. "Retail",
// "Institutional") that governs which invoice number prefix and sequence apply.
type InvoiceCategory struct {
	Code         int    `json:"code"`
	Description  string `json:"description"`
	InvoiceStart string `json:"invoiceStart"` // 8 chars: prefix + zero-padded sequence
	AuditFields
}

// SplitInvoiceCode splits an 8-character invoice code into its prefix and
// numeric sequence, validating the format invariant.
func SplitInvoiceCode(code string) (prefix string, seq int, err error) {
	if len(code) != InvoiceStartLen {
		return "", 0, fmt.Errorf("invoice code %q must be exactly %d characters", code, InvoiceStartLen)
	}
	prefix = code[:InvoiceStartLen-4]
	seq, err = strconv.Atoi(code[InvoiceStartLen-4:])
	if err != nil {
		return "", 0, fmt.Errorf("invoice code %q must end in 4 digits", code)
	}
	return prefix, seq, nil
}

// FormatInvoiceCode joins a prefix and sequence back into an 8-character code.
func FormatInvoiceCode(prefix string, seq int) string {
	return fmt.Sprintf("%s%04d", prefix, seq)
}
