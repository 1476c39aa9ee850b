package models

// Box is one OCR text box with an axis-aligned bounding rectangle.
// Coordinates are pixels in image space.
type Box struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Entry is the structured result of layout parsing for one schedule card.
// Fields carry OCR noise through; the semantic normalizer cleans them.
type Entry struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Address  string `json:"address"`
}
