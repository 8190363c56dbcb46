package types

// Client holds the customer details printed on a quotation.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Meta carries the quotation header fields.
type Meta struct {
	Date   string `json:"date"`
	Number string `json:"number"`
}

// BankAccount is one payee account offered on the quotation footer.
type BankAccount struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc,omitempty"`
}

// Contact is the business's own contact block.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Discount type values for Settings.DiscountType.
const (
	DiscountNone    = ""
	DiscountFlat    = "flat"
	DiscountPercent = "percent"
)

// Settings carries the document-level pricing and contact configuration.
type Settings struct {
	DiscountType  string        `json:"discount_type,omitempty"`
	DiscountValue float64       `json:"discount_value,omitempty"`
	GSTEnabled    bool          `json:"gst_enabled,omitempty"`
	GSTRate       float64       `json:"gst_rate,omitempty"`
	PaidAmount    float64       `json:"paid_amount,omitempty"`
	SelectedBank  int           `json:"selected_bank,omitempty"`
	BankAccounts  []BankAccount `json:"bank_accounts,omitempty"`
	Contact       Contact       `json:"contact,omitempty"`
}

// Clone returns an independent copy of the settings.
func (s Settings) Clone() Settings {
	out := s
	if s.BankAccounts != nil {
		out.BankAccounts = make([]BankAccount, len(s.BankAccounts))
		copy(out.BankAccounts, s.BankAccounts)
	}
	return out
}

// Document is the full editable quotation state at a point in time: the
// unit of undo/redo and of versioning. The live document is the only
// mutable aliased value; every history entry and version owns a deep
// copy produced by Clone.
type Document struct {
	Client          Client   `json:"client"`
	Meta            Meta     `json:"meta"`
	MainItems       []Row    `json:"main_items"`
	AdditionalItems []Row    `json:"additional_items"`
	Settings        Settings `json:"settings"`
}

// NewDocument returns an empty document with non-nil row sections.
func NewDocument() Document {
	return Document{
		MainItems:       []Row{},
		AdditionalItems: []Row{},
	}
}

// Clone returns a structurally independent deep copy of the document.
func (d Document) Clone() Document {
	return Document{
		Client:          d.Client,
		Meta:            d.Meta,
		MainItems:       CloneRows(d.MainItems),
		AdditionalItems: CloneRows(d.AdditionalItems),
		Settings:        d.Settings.Clone(),
	}
}
