package explorer

import "context"

// SetupApp creates the explorer and installs it as the root of app.
// The first navigation happens when the user picks a place.
func SetupApp(ctx context.Context, app App, deps Deps) *Explorer {
	e := New(ctx, app, deps)
	app.EnableMouse(true)
	app.SetRoot(e, true)
	app.SetFocus(e.sidebar)
	return e
}
