package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/config"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/apperror"
	"github.com/supthawee/farmgate-api/pkg/printer"
)

// PrinterService renders composed receipt sections and drives the thermal
// printer. Printing is fire-and-forget relative to persistence: a print
// failure comes back as a structured result, never as an error that would
// roll anything back.
type PrinterService struct {
	printer    printer.Printer
	groupRepo  repository.TransactionGroupRepository
	userRepo   repository.UserRepository
	printerCfg config.PrinterConfig
	shopCfg    config.ShopConfig
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	groupRepo repository.TransactionGroupRepository,
	userRepo repository.UserRepository,
	printerCfg config.PrinterConfig,
	shopCfg config.ShopConfig,
) *PrinterService {
	return &PrinterService{
		printer:    p,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		printerCfg: printerCfg,
		shopCfg:    shopCfg,
	}
}

// Print result statuses.
const (
	PrintDone = "print done"
	PrintFail = "print fail"
)

// PrintResult is the structured outcome of a print attempt.
type PrintResult struct {
	Status   string                  `json:"status"`
	Message  string                  `json:"message,omitempty"`
	Sections []entity.ReceiptSection `json:"sections,omitempty"`
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerCfg.Type != "none" && s.printerCfg.Type != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerCfg.Type,
	}
}

// TestPrint sends a short test slip to the printer.
func (s *PrinterService) TestPrint() *PrintResult {
	section := entity.ReceiptSection{Kind: entity.ReceiptFarmerCopy}
	section.AddCentered("PRINTER TEST")
	section.AddText(time.Now().In(shopZone).Format("02/01/2006 15:04"))
	section.AddBold("Bold row")
	section.AddEmphasis("Emphasized row")

	sections := []entity.ReceiptSection{section}
	if err := s.printer.Print(s.renderSections(sections)); err != nil {
		log.Printf("Printer error (test): %v", err)
		return &PrintResult{Status: PrintFail, Message: err.Error(), Sections: sections}
	}
	return &PrintResult{Status: PrintDone, Sections: sections}
}

// PrintGroup composes and prints a group's receipt. SummaryOnly skips the
// per-line copies. The group must exist; everything after that is reported in
// the result, not as an error.
func (s *PrinterService) PrintGroup(ctx context.Context, groupID, operatorID uuid.UUID, summaryOnly bool) (*PrintResult, error) {
	group, err := s.groupRepo.GetWithLines(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Transaction group")
	}

	shop := s.shopIdentity(ctx, operatorID)
	sections := ComposeReceipt(shop, group, ComposeOptions{
		SummaryOnly: summaryOnly,
		PrintedAt:   time.Now(),
	})

	if err := s.printer.Print(s.renderSections(sections)); err != nil {
		log.Printf("Printer error (group %s): %v", groupID, err)
		return &PrintResult{Status: PrintFail, Message: err.Error(), Sections: sections}, nil
	}

	return &PrintResult{Status: PrintDone, Sections: sections}, nil
}

// shopIdentity is the configured shop header, overridden by whatever the
// operator has saved on their account.
func (s *PrinterService) shopIdentity(ctx context.Context, operatorID uuid.UUID) ShopIdentity {
	shop := ShopIdentity{
		Name:  s.shopCfg.Name,
		Phone: s.shopCfg.Phone,
		Hours: s.shopCfg.Hours,
	}
	if operatorID == uuid.Nil {
		return shop
	}
	user, err := s.userRepo.GetByID(ctx, operatorID)
	if err != nil || user == nil {
		return shop
	}
	if user.ShopName != nil && *user.ShopName != "" {
		shop.Name = *user.ShopName
	}
	if user.ShopAddress != nil && *user.ShopAddress != "" {
		shop.Address = *user.ShopAddress
	}
	if user.ShopPhone != nil && *user.ShopPhone != "" {
		shop.Phone = *user.ShopPhone
	}
	return shop
}

// renderSections converts composed sections into one ESC/POS byte stream,
// cutting the paper between sections.
func (s *PrinterService) renderSections(sections []entity.ReceiptSection) []byte {
	width := s.printerCfg.CharWidth
	if width <= 0 {
		width = 42
	}

	doc := printer.NewDocument(width)
	doc.Init().SetCodePage(byte(s.printerCfg.CodePage))

	for _, section := range sections {
		for _, row := range section.Texts {
			if row.Center {
				doc.SetAlign(printer.AlignCenter)
			} else {
				doc.SetAlign(printer.AlignLeft)
			}
			if row.Emphasis {
				doc.SetFontSize(printer.FontDouble)
			}
			if row.Bold {
				doc.SetBold(true)
			}
			doc.Text(row.Text)
			if row.Bold {
				doc.SetBold(false)
			}
			if row.Emphasis {
				doc.SetFontSize(printer.FontNormal)
			}
		}
		doc.SetAlign(printer.AlignLeft).
			FeedLines(3).
			PartialCut()
	}

	return doc.Bytes()
}
