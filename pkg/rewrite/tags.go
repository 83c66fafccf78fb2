package rewrite

import "strings"

// Conversion maps a React component identifier to its custom-element name.
type Conversion struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Table is an ordered list of conversions. Entries are applied in order,
// each one over the output of the previous.
type Table []Conversion

// DefaultTable returns a fresh copy of the Elevate component table.
//
// Shorter identifiers precede the longer ones that extend them, so
// ElvtButtonGroup is rewritten by the ElvtButton entry first and ends up as
// elvt-buttonGroup. The order is kept for output parity with existing
// converted files.
func DefaultTable() Table {
	return Table{
		{From: "ElvtButton", To: "elvt-button"},
		{From: "ElvtCard", To: "elvt-card"},
		{From: "ElvtIcon", To: "elvt-icon"},
		{From: "ElvtStack", To: "elvt-stack"},
		{From: "ElvtAvatar", To: "elvt-avatar"},
		{From: "ElvtInput", To: "elvt-input"},
		{From: "ElvtSelect", To: "elvt-select"},
		{From: "ElvtRadio", To: "elvt-radio"},
		{From: "ElvtCheckbox", To: "elvt-checkbox"},
		{From: "ElvtSwitch", To: "elvt-switch"},
		{From: "ElvtDialog", To: "elvt-dialog"},
		{From: "ElvtDrawer", To: "elvt-drawer"},
		{From: "ElvtDropdown", To: "elvt-dropdown"},
		{From: "ElvtTooltip", To: "elvt-tooltip"},
		{From: "ElvtBadge", To: "elvt-badge"},
		{From: "ElvtChip", To: "elvt-chip"},
		{From: "ElvtProgress", To: "elvt-progress"},
		{From: "ElvtSkeleton", To: "elvt-skeleton"},
		{From: "ElvtSlider", To: "elvt-slider"},
		{From: "ElvtExpansionPanel", To: "elvt-expansion-panel"},
		{From: "ElvtExpansionPanelGroup", To: "elvt-expansion-panel-group"},
		{From: "ElvtEmptyState", To: "elvt-empty-state"},
		{From: "ElvtLightbox", To: "elvt-lightbox"},
		{From: "ElvtIndicator", To: "elvt-indicator"},
		{From: "ElvtDivider", To: "elvt-divider"},
		{From: "ElvtDatePicker", To: "elvt-date-picker"},
		{From: "ElvtBreadcrumb", To: "elvt-breadcrumb"},
		{From: "ElvtBreadcrumbItem", To: "elvt-breadcrumb-item"},
		{From: "ElvtButtonGroup", To: "elvt-button-group"},
		{From: "ElvtIconButton", To: "elvt-icon-button"},
		{From: "ElvtApplication", To: "elvt-application"},
	}
}

// Shadowed returns the entries that can never match because an earlier
// entry's source is a substring of theirs and has already rewritten every
// occurrence.
func (t Table) Shadowed() []Conversion {
	var out []Conversion
	for i, c := range t {
		for _, prev := range t[:i] {
			if prev.From != "" && strings.Contains(c.From, prev.From) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// ReplaceIdentifiers replaces every occurrence of each source identifier in
// s, anywhere in the text, applying the table entries in order. It returns the
// new text and the number of occurrences replaced.
func ReplaceIdentifiers(s string, table Table) (string, int) {
	total := 0
	for _, c := range table {
		if c.From == "" {
			continue
		}
		n := strings.Count(s, c.From)
		if n == 0 {
			continue
		}
		s = strings.ReplaceAll(s, c.From, c.To)
		total += n
	}
	return s, total
}
