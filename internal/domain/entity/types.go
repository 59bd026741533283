package entity

type FieldType string

const (
	FieldText        FieldType = "text"
	FieldRichText    FieldType = "rich-text"
	FieldNumber      FieldType = "number"
	FieldCurrency    FieldType = "currency"
	FieldDate        FieldType = "date"
	FieldDateTime    FieldType = "datetime"
	FieldBoolean     FieldType = "boolean"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multi-select"
	FieldTags        FieldType = "tags"
	FieldURL         FieldType = "url"
	FieldEmail       FieldType = "email"
)

// HasOptions reports whether fields of this type carry a fixed option list.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldMultiSelect
}

// Field describes one attribute of a record type: its storage shape plus
// the form and list metadata the dashboard needs.
type Field struct {
	Name        string    `json:"name" yaml:"name"`
	Label       string    `json:"label" yaml:"label"`
	Type        FieldType `json:"type" yaml:"type"`
	Required    bool      `json:"required" yaml:"required"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Default     any       `json:"defaultValue,omitempty" yaml:"default,omitempty"` // string | number | bool

	// nil means visible
	ShowInList *bool `json:"showInList,omitempty" yaml:"show_in_list,omitempty"`
	ShowInForm *bool `json:"showInForm,omitempty" yaml:"show_in_form,omitempty"`
}

func (f Field) VisibleInList() bool { return f.ShowInList == nil || *f.ShowInList }
func (f Field) VisibleInForm() bool { return f.ShowInForm == nil || *f.ShowInForm }

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortSpec struct {
	Field     string        `json:"field" yaml:"field"`
	Direction SortDirection `json:"direction" yaml:"direction"`
}

// Config is a named record type with its ordered fields and capabilities.
type Config struct {
	Name             string   `json:"name" yaml:"name"`
	PluralName       string   `json:"pluralName" yaml:"plural_name"`
	Slug             string   `json:"slug" yaml:"slug"`
	Icon             string   `json:"icon" yaml:"icon"`
	Fields           []Field  `json:"fields" yaml:"fields"`
	TitleField       string   `json:"titleField" yaml:"title_field"`
	DescriptionField string   `json:"descriptionField,omitempty" yaml:"description_field,omitempty"`
	DefaultSort      SortSpec `json:"defaultSort" yaml:"default_sort"`

	AllowCreate bool `json:"allowCreate" yaml:"allow_create"`
	AllowEdit   bool `json:"allowEdit" yaml:"allow_edit"`
	AllowDelete bool `json:"allowDelete" yaml:"allow_delete"`
	AllowExport bool `json:"allowExport" yaml:"allow_export"`
}

// Field returns the field with the given name.
func (c Config) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ListFields returns the fields shown in list views, in declaration order.
func (c Config) ListFields() []Field {
	out := make([]Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f.VisibleInList() {
			out = append(out, f)
		}
	}
	return out
}

// FormFields returns the fields shown in create/edit forms.
func (c Config) FormFields() []Field {
	out := make([]Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f.VisibleInForm() {
			out = append(out, f)
		}
	}
	return out
}
