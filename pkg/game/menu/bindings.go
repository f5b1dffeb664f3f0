// Package menu lists the key bindings for the -keys flag.
package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	engineinput "movingsquare/pkg/engine/input"
	"movingsquare/pkg/game/i18n"
)

// BindingItem is one line of the bindings listing.
type BindingItem struct {
	Action engineinput.Action
	Codes  []string
	// NonRebindable is set for actions whose arrow keys are reserved.
	NonRebindable bool
}

// GetLabel returns the display label for this binding.
func (b BindingItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = color.Gray.Sprint(i18n.T("UNBOUND"))
	}

	if b.NonRebindable {
		return fmt.Sprintf("%s: %s %s", color.Bold.Sprint(name), codeText, color.Gray.Sprint(i18n.T("FIXED")))
	}
	return fmt.Sprintf("%s: %s", color.Bold.Sprint(name), codeText)
}

// BindingItems returns one item per action in display order, using the
// current binding table.
func BindingItems() []BindingItem {
	byAction := engineinput.GetBindingsByAction()
	actions := engineinput.AllActions()
	items := make([]BindingItem, len(actions))
	for i, action := range actions {
		items[i] = BindingItem{
			Action:        action,
			Codes:         byAction[action],
			NonRebindable: isNonRebindable(byAction[action]),
		}
	}
	return items
}

// PrintBindings writes the header and every binding label to w.
func PrintBindings(w io.Writer) error {
	if _, err := fmt.Fprintln(w, color.Yellow.Sprint(i18n.T("KEYS_HEADER"))); err != nil {
		return err
	}
	for _, item := range BindingItems() {
		if _, err := fmt.Fprintf(w, "  %s\n", item.GetLabel()); err != nil {
			return err
		}
	}
	return nil
}

// isNonRebindable checks if any of the codes is pinned to its action.
func isNonRebindable(codes []string) bool {
	for _, c := range codes {
		if engineinput.IsReserved(c) {
			return true
		}
	}
	return false
}
