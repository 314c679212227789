package domain_test

import (
	"testing"

	"github.com/invoiceflow/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDocumentNumber(t *testing.T) {
	assert.Equal(t, "INV001", domain.FormatDocumentNumber(domain.InvoiceNumberPrefix, 1))
	assert.Equal(t, "INV004", domain.FormatDocumentNumber(domain.InvoiceNumberPrefix, 4))
	assert.Equal(t, "DEV042", domain.FormatDocumentNumber(domain.QuoteNumberPrefix, 42))
	assert.Equal(t, "DEV999", domain.FormatDocumentNumber(domain.QuoteNumberPrefix, 999))
	// Past three digits the number widens instead of wrapping.
	assert.Equal(t, "INV1000", domain.FormatDocumentNumber(domain.InvoiceNumberPrefix, 1000))
}

func TestValidStatuses(t *testing.T) {
	assert.True(t, domain.ValidInvoiceStatus(domain.InvoicePaid))
	assert.False(t, domain.ValidInvoiceStatus("Payé"))
	assert.True(t, domain.ValidQuoteStatus(domain.QuoteAccepted))
	assert.False(t, domain.ValidQuoteStatus("Accepted "))
}
