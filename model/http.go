package model

// Vec is the wire form of a tonal vector. A nil octave means an
// abstract interval vector; a set octave means a pitch vector.
type Vec struct {
	D int  `json:"d"`
	C int  `json:"c"`
	O *int `json:"o,omitempty"`
}

type BinOpRequestBody struct {
	X Vec `json:"x"`
	Y Vec `json:"y"`
}

type UnOpRequestBody struct {
	V Vec `json:"v"`
}

type VectorResponse struct {
	Result Vec `json:"result"`

	// spellings of the result, omitted when it has no conventional name
	Pitch    string `json:"pitch,omitempty"`
	Interval string `json:"interval,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
