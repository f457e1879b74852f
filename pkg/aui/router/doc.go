// Package router is the application-side event manager for aui dialogs.
//
// A dialog's event loop returns one event at a time. Router keeps the
// handlers for those events in one place instead of a hand-written switch
// around WaitForEvent.
//
// # Basic Usage
//
//	dlg, _ := factory.CreateMainDialog(constants.ColorNormal)
//	vbox, _ := factory.CreateVBox(dlg)
//	name, _ := factory.CreateInputField(vbox, "&Name")
//	ok, _ := factory.CreatePushButton(vbox, "&OK")
//	_ = dlg.Open()
//
//	r := router.New(dlg)
//
//	r.OnWidget(ok, func(aui.Event) error {
//	    fmt.Println("hello", name.Value())
//	    return router.ErrStop
//	})
//
//	r.OnMenuID("File/Quit", func(aui.Event) error {
//	    return router.ErrStop
//	})
//
//	r.OnCancel(func(aui.Event) error {
//	    return router.ErrStop
//	})
//
//	err := r.Run(ctx)
//	dlg.Destroy()
//
// # Registration
//
// Every On* call adds a handler and returns a Registration whose Remove
// takes exactly that handler away again. Several handlers for the same
// widget, item or ID run in the order they were added.
//
// # Scopes
//
// PushScope and PopScope bracket the handlers that belong to a temporary
// part of the UI, such as the page a DumbTab currently shows. PopScope
// removes everything registered since the matching PushScope.
//
// # Run
//
// Run loops until a handler returns ErrStop, the dialog is destroyed or
// the last open dialog goes away. A panicking handler is logged and does
// not end the loop. A cancel event without handlers destroys the dialog.
package router
