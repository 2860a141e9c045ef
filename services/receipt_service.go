package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/amrhendawy/vetdesk/configs"
	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateBoardingReceipt renders the checkout receipt for an invoice,
// uploads the PDF, and stores its URL on the invoice row. It runs in the
// background after checkout; failures are logged and the invoice simply
// keeps a nil receipt URL.
func GenerateBoardingReceipt(invoiceID uuid.UUID) {
	var invoice models.Invoice
	if err := database.DB.
		Preload("Client").
		Preload("Session.Pet").
		Preload("Session.Config").
		First(&invoice, "id = ?", invoiceID).Error; err != nil {
		log.Printf("🔥 Receipt generation: invoice %s not found: %v", invoiceID, err)
		return
	}

	htmlData, err := generateReceiptHTML(invoice)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF: %v", err)
		return
	}

	uploadURL, err := uploadReceiptToCloudinary(pdfBytes, invoice.InvoiceNumber)
	if err != nil {
		log.Printf("🔥 Failed to upload receipt to Cloudinary: %v", err)
		return
	}

	invoice.ReceiptURL = &uploadURL
	if err := database.DB.Save(&invoice).Error; err != nil {
		log.Printf("🔥 Failed to store receipt URL for invoice %s: %v", invoice.InvoiceNumber, err)
		return
	}

	log.Printf("✅ Generated receipt for invoice %s.", invoice.InvoiceNumber)
}

func generateReceiptHTML(invoice models.Invoice) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	petName := ""
	stayDays := 0
	if invoice.Session != nil {
		petName = invoice.Session.Pet.Name
		if invoice.Session.StayDays != nil {
			stayDays = *invoice.Session.StayDays
		}
	}

	data := struct {
		InvoiceNumber string
		ClientName    string
		PetName       string
		Description   string
		StayDays      int
		Amount        float64
		IssuedAt      string
	}{
		InvoiceNumber: invoice.InvoiceNumber,
		ClientName:    invoice.Client.FullName,
		PetName:       petName,
		Description:   invoice.Description,
		StayDays:      stayDays,
		Amount:        invoice.Amount,
		IssuedAt:      time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceiptToCloudinary(fileBytes []byte, invoiceNumber string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s", invoiceNumber),
		Folder:       "vetdesk_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
