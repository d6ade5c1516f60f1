package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/karim9155/Tutlayt/configs"
	"github.com/karim9155/Tutlayt/database"
	"github.com/karim9155/Tutlayt/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateMissionOrder renders the mission order PDF for a completed booking,
// uploads it and stores the URL on the booking. Safe to call more than once;
// an existing order is kept.
func GenerateMissionOrder(booking models.Booking) {
	if booking.MissionOrderURL != nil && *booking.MissionOrderURL != "" {
		return
	}

	var client, interpreterUser models.User
	if err := database.DB.First(&client, "id = ?", booking.ClientID).Error; err != nil {
		log.Printf("🔥 Failed to load client for mission order %s: %v", booking.Reference, err)
		return
	}
	if err := database.DB.First(&interpreterUser, "id = ?", booking.InterpreterID).Error; err != nil {
		log.Printf("🔥 Failed to load interpreter for mission order %s: %v", booking.Reference, err)
		return
	}

	htmlData, err := generateMissionOrderHTML(booking, client.FullName, interpreterUser.FullName)
	if err != nil {
		log.Printf("🔥 Failed to generate mission order HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadMissionOrderPDF(pdfBytes, booking.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload mission order to Cloudinary: %v", err)
		return
	}

	if err := database.DB.Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Update("mission_order_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to record mission order URL for booking %s: %v", booking.Reference, err)
	} else {
		log.Printf("✅ Generated mission order for booking %s.", booking.Reference)
	}
}

func generateMissionOrderHTML(booking models.Booking, clientName, interpreterName string) (string, error) {
	tmpl, err := template.ParseFiles("templates/mission_order.html")
	if err != nil {
		return "", err
	}

	data := struct {
		Reference       string
		Title           string
		ClientName      string
		InterpreterName string
		Platform        string
		Languages       string
		SubjectMatter   string
		StartTime       string
		EndTime         string
		Timezone        string
		Price           string
		IssuedDate      string
	}{
		Reference:       booking.Reference,
		Title:           booking.Title,
		ClientName:      clientName,
		InterpreterName: interpreterName,
		Platform:        booking.Platform,
		Languages:       booking.Languages,
		SubjectMatter:   booking.SubjectMatter,
		StartTime:       booking.StartTime.Format("January 2, 2006 15:04"),
		EndTime:         booking.EndTime.Format("January 2, 2006 15:04"),
		Timezone:        booking.Timezone,
		Price:           fmt.Sprintf("%.2f %s", booking.Price, booking.Currency),
		IssuedDate:      time.Now().Format("January 2, 2006"),
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

func uploadMissionOrderPDF(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("mission_orders/%s_%s", reference, uuid.New().String()),
		Folder:       "tutlayt_mission_orders",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
