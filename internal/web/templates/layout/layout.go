package layout

import "github.com/mcoot/numberguess/internal/model"

// FlashMessage is a one-shot notice shown on the next page load
type FlashMessage struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}

// PageData is shared by every full page
type PageData struct {
	Title  string
	Player *model.Player
	Flash  *FlashMessage
}

func flashClass(f *FlashMessage) string {
	return "flash flash-" + f.Type
}
