package entity

// ReceiptSectionKind tags what a composed receipt section is: a per-line
// farmer or employee copy, or one of the group-level summaries.
type ReceiptSectionKind string

const (
	ReceiptFarmerCopy       ReceiptSectionKind = "farmer_copy"
	ReceiptEmployeeCopy     ReceiptSectionKind = "employee_copy"
	ReceiptProductSummary   ReceiptSectionKind = "product_summary"
	ReceiptEmployeeSummary  ReceiptSectionKind = "employee_summary"
	ReceiptPromotionSummary ReceiptSectionKind = "promotion_summary"
)

// ReceiptText is one printable row of a receipt section. Emphasis marks the
// payable figures that print larger; Bold marks secondary highlights.
type ReceiptText struct {
	Text     string `json:"text"`
	Bold     bool   `json:"bold,omitempty"`
	Emphasis bool   `json:"emphasis,omitempty"`
	Center   bool   `json:"center,omitempty"`
}

// ReceiptSection is one cuttable block of a printed receipt.
// Receipts are NOT database entities — they are composed from a transaction
// group at print time and rendered by the printing layer.
type ReceiptSection struct {
	Kind  ReceiptSectionKind `json:"kind"`
	Texts []ReceiptText      `json:"texts"`
}

// AddText appends a plain row to the section.
func (s *ReceiptSection) AddText(text string) {
	s.Texts = append(s.Texts, ReceiptText{Text: text})
}

// AddBold appends a bolded row to the section.
func (s *ReceiptSection) AddBold(text string) {
	s.Texts = append(s.Texts, ReceiptText{Text: text, Bold: true})
}

// AddEmphasis appends an emphasized (large-print) row to the section.
func (s *ReceiptSection) AddEmphasis(text string) {
	s.Texts = append(s.Texts, ReceiptText{Text: text, Emphasis: true})
}

// AddCentered appends a centered header row to the section.
func (s *ReceiptSection) AddCentered(text string) {
	s.Texts = append(s.Texts, ReceiptText{Text: text, Center: true})
}
