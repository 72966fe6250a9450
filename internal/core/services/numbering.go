package services

import (
	"fmt"

	"github.com/hasanqazi87/lab-site/internal/apperrors"
	"github.com/hasanqazi87/lab-site/internal/core/domain"
)

// AllocateInvoiceNumbers assigns consecutive invoice codes to accounts in
// grouping order, starting at the category's invoice start. Fails when the
// 4-digit sequence would pass its ceiling; no partial allocation escapes.
func AllocateInvoiceNumbers(start string, accountNos []string) (map[string]string, error) {
	prefix, seq, err := domain.SplitInvoiceCode(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	if last := seq + len(accountNos) - 1; last > domain.InvoiceSeqMax {
		return nil, fmt.Errorf("%w: allocating %d invoice numbers from %s would pass %s%04d",
			apperrors.ErrSequenceExhausted, len(accountNos), start, prefix, domain.InvoiceSeqMax)
	}

	assigned := make(map[string]string, len(accountNos))
	for i, acct := range accountNos {
		assigned[acct] = domain.FormatInvoiceCode(prefix, seq+i)
	}
	return assigned, nil
}

// NextInvoiceStart computes the category's next starting code after issuing
// invoices: the highest issued sequence plus one. Issued codes must share the
// start's prefix; the allocator guarantees that.
func NextInvoiceStart(start string, issued []string) (string, error) {
	prefix, seq, err := domain.SplitInvoiceCode(start)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	max := seq - 1
	for _, code := range issued {
		p, s, err := domain.SplitInvoiceCode(code)
		if err != nil {
			return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		if p != prefix {
			return "", fmt.Errorf("%w: issued code %s does not share prefix %s", apperrors.ErrValidation, code, prefix)
		}
		if s > max {
			max = s
		}
	}

	next := max + 1
	if next > domain.InvoiceSeqMax {
		return "", fmt.Errorf("%w: next start %s%04d passes the sequence ceiling",
			apperrors.ErrSequenceExhausted, prefix, next)
	}
	return domain.FormatInvoiceCode(prefix, next), nil
}
