package editor

// Layout is everything the modal needs that depends on the mode alone.
type Layout struct {
	Title       string `json:"title"`
	LabelSpan   int    `json:"labelSpan"`
	WrapperSpan int    `json:"wrapperSpan"`
	ModalWidth  int    `json:"modalWidth"`
	ShowDelete  bool   `json:"showDelete"`
}

const modalWidth = 800

func LayoutFor(isEdit bool) Layout {
	if isEdit {
		return Layout{
			Title:       "Uredi rezervaciju",
			LabelSpan:   4,
			WrapperSpan: 20,
			ModalWidth:  modalWidth,
			ShowDelete:  true,
		}
	}
	return Layout{
		Title:       "Dodaj novi rezervaciju",
		LabelSpan:   6,
		WrapperSpan: 18,
		ModalWidth:  modalWidth,
	}
}
