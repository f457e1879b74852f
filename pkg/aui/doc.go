// Package aui is a backend-agnostic widget toolkit for modal dialogs.
//
// An application builds a widget tree under a Dialog through a
// WidgetFactory, opens the dialog and then asks it for events. The
// backend chosen at factory construction (the terminal backend in
// backend/tui, the desktop backend in backend/sdl, or a test double from
// auitest) realises the widgets, draws them and delivers input.
//
// # Basic Usage
//
//	cfg, err := aui.Init(aui.Options{ConfigPath: "aui.toml"})
//	if err != nil {
//	    return err
//	}
//	defer aui.Close()
//
//	backend, err := tui.New()
//	if err != nil {
//	    return err
//	}
//	defer backend.Close()
//
//	factory := aui.NewFactory(backend)
//	dlg, _ := factory.CreateMainDialog(constants.ColorNormal)
//	vbox, _ := factory.CreateVBox(dlg)
//	list, _ := factory.CreateSelectionBox(vbox, "&Packages")
//	list.AddItems(aui.NewItem("curl"), aui.NewItem("vim"))
//	ok, _ := factory.CreatePushButton(vbox, "&OK")
//	_ = dlg.SetDefaultButton(ok)
//	_ = dlg.Open()
//
//	for {
//	    ev, err := dlg.WaitForEvent(0)
//	    if err != nil {
//	        return err
//	    }
//	    switch ev.(type) {
//	    case *aui.CancelEvent:
//	        return nil
//	    case *aui.WidgetEvent:
//	        fmt.Println(list.Value())
//	    }
//	}
//
// # Events
//
// Only widgets with notify set post events; push buttons, menu bars and
// dumb tabs have it on by default. A dialog holds at most one pending
// event, and a newer one replaces it. WaitForEvent runs a nested event
// loop on the topmost dialog; a timeout yields a TimeoutEvent and an
// interrupt or window close yields a CancelEvent.
//
// # Layout
//
// HBox and VBox give every child its preferred size along the main axis
// and share any rest among stretchable children in proportion to their
// weights. When space is short the widest child shrinks first.
//
// # Threading
//
// Widgets, dialogs and the open-dialog stack belong to one UI goroutine.
// Other goroutines may only call Backend.Wake to interrupt a wait.
package aui
