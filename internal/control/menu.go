package control

import (
	"fmt"

	"github.com/ja-he/flycreate/internal/control/action"
	"github.com/ja-he/flycreate/internal/library"
	"github.com/ja-he/flycreate/internal/ui"
)

// Menu item labels.
const (
	LabelApplyTheme  = "Apply theme"
	LabelEnableBind  = "Enable bind"
	LabelDisableBind = "Disable bind"
	LabelShowRaw     = "Show raw"
)

// InfoLabel is the label of the info item of a library.
func InfoLabel(rec *library.Record) string {
	return fmt.Sprintf("Info (creator: %s)", rec.Creator)
}

// OpenTabLabel is the label of the item opening a tab.
func OpenTabLabel(tab library.Tab) string {
	return fmt.Sprintf("Open tab: %s", tab.Title)
}

// menuEntries builds one menu entry per loaded library.
// Items act on their own library, also when a later file shadows its name;
// binds are the exception, they are toggled by name.
func (e *Engine) menuEntries() []ui.MenuEntry {
	entries := make([]ui.MenuEntry, 0, len(e.libraries))
	for _, lib := range e.libraries {
		rec := lib.Base()
		name := rec.Name
		entry := ui.MenuEntry{Library: name, Kind: rec.Kind}

		entry.Items = append(entry.Items, ui.MenuItem{
			Label: InfoLabel(rec),
			Action: action.NewSimple(action.Explanation("show library info"), func() {
				e.notifier.Info("Library info", libraryInfo(rec))
			}),
		})

		switch l := lib.(type) {
		case library.ThemeLibrary:
			entry.Items = append(entry.Items, ui.MenuItem{
				Label:  LabelApplyTheme,
				Action: action.NewSimple(action.Explanation("apply theme"), func() { _ = e.applyThemeLibrary(l) }),
			})
		case library.BindLibrary:
			entry.Items = append(entry.Items,
				ui.MenuItem{
					Label:  LabelEnableBind,
					Action: action.NewSimple(action.Explanation("enable bind"), func() { e.EnableBind(name) }),
				},
				ui.MenuItem{
					Label:  LabelDisableBind,
					Action: action.NewSimple(action.Explanation("disable bind"), func() { e.DisableBind(name) }),
				},
			)
		case library.TabsLibrary:
			for _, tab := range l.Tabs() {
				tab := tab
				entry.Items = append(entry.Items, ui.MenuItem{
					Label:  OpenTabLabel(tab),
					Action: action.NewSimple(action.Explanation("open tab"), func() { _ = e.OpenTabContent(tab.Title, tab.Content) }),
				})
			}
		}

		entry.Items = append(entry.Items, ui.MenuItem{
			Label: LabelShowRaw,
			Action: action.NewSimple(action.Explanation("show raw library file"), func() {
				raw, err := e.rawFile(rec)
				if err != nil {
					raw = fmt.Sprintf("Could not read file: %s", err.Error())
				}
				e.notifier.Info(name, raw)
			}),
		})

		entries = append(entries, entry)
	}
	return entries
}
