package entity

// Proposal field names, shared with the storage model.
const (
	FieldNameTitle          = "title"
	FieldNameClientName     = "client_name"
	FieldNameTotalAmount    = "total_amount"
	FieldNameStatus         = "status"
	FieldNameDateSent       = "date_sent"
	FieldNameAcceptanceDate = "acceptance_date"
	FieldNameShareableLink  = "shareable_link"
)

var ProposalStatuses = []string{"draft", "sent", "viewed", "accepted", "rejected", "archived"}

func show(v bool) *bool { return &v }

// Proposal is the record type the dashboard manages.
var Proposal = Config{
	Name:       "Proposal",
	PluralName: "Proposals",
	Slug:       "proposals",
	Icon:       "file-text",

	Fields: []Field{
		{
			Name:        FieldNameTitle,
			Label:       "Proposal Title",
			Type:        FieldText,
			Required:    true,
			Placeholder: "e.g., Website Redesign for Acme Corp.",
			ShowInList:  show(true),
			ShowInForm:  show(true),
		},
		{
			Name:        FieldNameClientName,
			Label:       "Client Name",
			Type:        FieldText,
			Required:    true,
			Placeholder: "e.g., Acme Corp.",
			ShowInList:  show(true),
			ShowInForm:  show(true),
		},
		{
			Name:        FieldNameTotalAmount,
			Label:       "Total Amount",
			Type:        FieldCurrency,
			Required:    true,
			Placeholder: "e.g., 1500.00",
			ShowInList:  show(true),
			ShowInForm:  show(true),
		},
		{
			Name:       FieldNameStatus,
			Label:      "Status",
			Type:       FieldSelect,
			Required:   true,
			Options:    ProposalStatuses,
			Default:    "draft",
			ShowInList: show(true),
			ShowInForm: show(true),
		},
		{
			Name:       FieldNameDateSent,
			Label:      "Date Sent",
			Type:       FieldDate,
			ShowInList: show(false),
			ShowInForm: show(true),
		},
		{
			Name:       FieldNameAcceptanceDate,
			Label:      "Acceptance Date",
			Type:       FieldDate,
			ShowInList: show(false),
			ShowInForm: show(true),
		},
		{
			Name:        FieldNameShareableLink,
			Label:       "Shareable Link",
			Type:        FieldURL,
			Placeholder: "https://quotedrop.app/q/...",
			ShowInList:  show(false),
			ShowInForm:  show(true),
		},
	},

	TitleField:       FieldNameTitle,
	DescriptionField: FieldNameClientName,
	DefaultSort:      SortSpec{Field: "created_at", Direction: SortDesc},

	AllowCreate: true,
	AllowEdit:   true,
	AllowDelete: true,
	AllowExport: false,
}

// ListFields returns the Proposal fields shown in list views.
func ListFields() []Field { return Proposal.ListFields() }

// FormFields returns the Proposal fields shown in forms.
func FormFields() []Field { return Proposal.FormFields() }
