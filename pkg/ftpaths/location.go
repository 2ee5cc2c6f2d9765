// Package ftpaths resolves the well-known locations shown in the sidebar.
//
// Resolution happens once at startup. The resulting Registry is read-only and
// is passed down explicitly to whoever needs it.
package ftpaths

// Label names a well-known location.
type Label string

const (
	Recent    Label = "Recent"
	Favorites Label = "Favorites"
	Home      Label = "Home"
	Documents Label = "Documents"
	Downloads Label = "Downloads"
	Music     Label = "Music"
	Pictures  Label = "Pictures"
	Videos    Label = "Videos"
	Trash     Label = "Trash"
)

// Order in which locations are presented.
var sidebarOrder = []Label{
	Recent, Favorites, Home, Documents, Downloads, Music, Pictures, Videos, Trash,
}

// KnownLocation is a resolved well-known location.
type KnownLocation struct {
	Label Label
	Path  string
}
