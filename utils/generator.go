package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/amrhendawy/vetdesk/models"
	"gorm.io/gorm"
)

const invoiceSuffixLength = 6
const digitBytes = "0123456789"

// GenerateInvoiceNumber produces a number like INV-240615-381204 that is
// unique among existing invoices, retrying on the rare collision.
func GenerateInvoiceNumber(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, invoiceSuffixLength)
		for i := range b {
			b[i] = digitBytes[seededRand.Intn(len(digitBytes))]
		}
		number := fmt.Sprintf("INV-%s-%s", time.Now().Format("060102"), string(b))

		var invoice models.Invoice
		err := tx.Where("invoice_number = ?", number).First(&invoice).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return number, nil
			}
			return "", err
		}
	}
}
