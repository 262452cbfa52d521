package tags

import "github.com/yohamta/donburi"

var (
	Blob  = donburi.NewTag().SetName("Blob")
	Note  = donburi.NewTag().SetName("Note")
	Shelf = donburi.NewTag().SetName("Shelf")
)

// Resolv tags for collision objects
const (
	ResolvSolid = "solid"
	ResolvBlob  = "Blob"
	ResolvNote  = "Note"
)
