package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(fields []Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Name)
	}
	return out
}

func TestProposalConfigIsValid(t *testing.T) {
	require.NoError(t, Validate(Proposal))
}

func TestListFieldsExcludesHidden(t *testing.T) {
	want := []string{"title", "client_name", "total_amount", "status"}
	if diff := cmp.Diff(want, names(ListFields())); diff != "" {
		t.Fatalf("ListFields() mismatch (-want +got):\n%s", diff)
	}

	// exactly the fields explicitly set to false are dropped
	var hidden []string
	for _, f := range Proposal.Fields {
		if f.ShowInList != nil && !*f.ShowInList {
			hidden = append(hidden, f.Name)
		}
	}
	assert.Len(t, ListFields(), len(Proposal.Fields)-len(hidden))
}

func TestVisibilityDefaultsToShown(t *testing.T) {
	c := Config{Fields: []Field{
		{Name: "a", Type: FieldText},
		{Name: "b", Type: FieldText, ShowInList: show(false), ShowInForm: show(false)},
		{Name: "c", Type: FieldText, ShowInList: show(true)},
	}}

	assert.Equal(t, []string{"a", "c"}, names(c.ListFields()))
	assert.Equal(t, []string{"a", "c"}, names(c.FormFields()))
}

func TestFormFieldsIncludesEverything(t *testing.T) {
	assert.Equal(t, names(Proposal.Fields), names(FormFields()))
}

func TestFieldTypeToSQL(t *testing.T) {
	tests := []struct {
		in   FieldType
		want string
	}{
		{FieldText, "TEXT"},
		{FieldNumber, "INTEGER"},
		{FieldCurrency, "NUMERIC(10,2)"},
		{FieldDateTime, "TIMESTAMPTZ"},
		{FieldBoolean, "BOOLEAN DEFAULT FALSE"},
		{FieldSelect, "TEXT"},
		{FieldMultiSelect, "TEXT[]"},
		{FieldTags, "TEXT[]"},
		{FieldType("geo"), "TEXT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FieldTypeToSQL(tt.in), "type %s", tt.in)
	}
}

func TestFieldTypeToZod(t *testing.T) {
	status, ok := Proposal.Field("status")
	require.True(t, ok)
	assert.Equal(t, "z.enum(['draft', 'sent', 'viewed', 'accepted', 'rejected', 'archived'])", FieldTypeToZod(status))

	link, _ := Proposal.Field("shareable_link")
	assert.Equal(t, "z.string().url().optional()", FieldTypeToZod(link))

	amount, _ := Proposal.Field("total_amount")
	assert.Equal(t, "z.coerce.number()", FieldTypeToZod(amount))

	bare := Field{Name: "x", Type: FieldSelect, Required: true}
	assert.Equal(t, "z.enum(['draft'])", FieldTypeToZod(bare))

	unknown := Field{Name: "y", Type: FieldType("geo")}
	assert.Equal(t, "z.string().optional()", FieldTypeToZod(unknown))
}

func TestSelectColumnMatchesOptions(t *testing.T) {
	ddl := CreateTableSQL(Proposal)

	status, _ := Proposal.Field("status")
	for _, opt := range status.Options {
		assert.Contains(t, ddl, "'"+opt+"'")
	}
	assert.Contains(t, ddl, "status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN (")
	assert.Contains(t, ddl, "total_amount NUMERIC(10,2) NOT NULL,")
	assert.Contains(t, ddl, "date_sent DATE,")
	assert.True(t, strings.HasPrefix(ddl, "CREATE TABLE IF NOT EXISTS proposals ("))
}

func TestBooleanDefaultNotDuplicated(t *testing.T) {
	c := Config{Slug: "things", Fields: []Field{{Name: "done", Type: FieldBoolean, Default: true}}}
	ddl := CreateTableSQL(c)
	assert.Contains(t, ddl, "done BOOLEAN DEFAULT FALSE,")
	assert.Equal(t, 1, strings.Count(ddl, "done BOOLEAN"))
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	base := func() Config {
		return Config{
			TitleField:  "a",
			DefaultSort: SortSpec{Field: "created_at", Direction: SortDesc},
			Fields:      []Field{{Name: "a", Type: FieldText}},
		}
	}

	dup := base()
	dup.Fields = append(dup.Fields, Field{Name: "a", Type: FieldText})
	assert.ErrorIs(t, Validate(dup), ErrDuplicateField)

	noOpts := base()
	noOpts.Fields = append(noOpts.Fields, Field{Name: "s", Type: FieldSelect})
	assert.ErrorIs(t, Validate(noOpts), ErrOptionsMismatch)

	strayOpts := base()
	strayOpts.Fields = append(strayOpts.Fields, Field{Name: "t", Type: FieldText, Options: []string{"x"}})
	assert.ErrorIs(t, Validate(strayOpts), ErrOptionsMismatch)

	badTitle := base()
	badTitle.TitleField = "missing"
	assert.ErrorIs(t, Validate(badTitle), ErrUnknownReference)

	badDesc := base()
	badDesc.DescriptionField = "missing"
	assert.ErrorIs(t, Validate(badDesc), ErrUnknownReference)

	badSort := base()
	badSort.DefaultSort.Field = "missing"
	assert.ErrorIs(t, Validate(badSort), ErrUnknownReference)
}

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord(Proposal, map[string]any{
		"title":          "Website Redesign",
		"client_name":    "Acme Corp.",
		"total_amount":   "1500.50",
		"status":         "sent",
		"date_sent":      "2026-03-01",
		"shareable_link": "https://quotedrop.app/q/abc",
	}, false)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("1500.50").Equal(rec["total_amount"].(decimal.Decimal)))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), rec["date_sent"])
	assert.Equal(t, "sent", rec["status"])
	_, hasAcceptance := rec["acceptance_date"]
	assert.False(t, hasAcceptance)
}

func TestParseRecordErrors(t *testing.T) {
	_, err := ParseRecord(Proposal, map[string]any{
		"title":          "",
		"client_name":    "Acme",
		"total_amount":   "lots",
		"status":         "won",
		"shareable_link": "not a url",
		"owner":          "me",
	}, false)

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "is required", fe["title"])
	assert.Equal(t, "must be a number", fe["total_amount"])
	assert.Contains(t, fe["status"], "must be one of draft")
	assert.Equal(t, "must be a valid URL", fe["shareable_link"])
	assert.Equal(t, "is not a form field", fe["owner"])
	assert.NotContains(t, fe, "client_name")
}

func TestParseRecordPartial(t *testing.T) {
	rec, err := ParseRecord(Proposal, map[string]any{"status": "accepted", "acceptance_date": "2026-04-02"}, true)
	require.NoError(t, err)
	assert.Len(t, rec, 2)
}

func TestParseRecordPartialCannotClearRequired(t *testing.T) {
	_, err := ParseRecord(Proposal, map[string]any{"title": ""}, true)
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "is required", fe["title"])
}

func TestValidateRecord(t *testing.T) {
	assert.NoError(t, ValidateRecord(Proposal, map[string]any{
		"title": "Logo", "client_name": "Bo", "total_amount": 300, "status": "draft",
	}))
	assert.Error(t, ValidateRecord(Proposal, map[string]any{"title": "Logo"}))
}

func TestParseRecordAppliesDefaults(t *testing.T) {
	rec, err := ParseRecord(Proposal, map[string]any{
		"title": "Logo", "client_name": "Bo", "total_amount": 300,
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "draft", rec["status"])

	// updates never fill in defaults
	rec, err = ParseRecord(Proposal, map[string]any{"title": "Logo v2"}, true)
	require.NoError(t, err)
	assert.NotContains(t, rec, "status")
}
