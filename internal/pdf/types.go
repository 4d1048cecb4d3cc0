package pdf

// ReadResult holds the plain text extracted from a schedule PDF.
type ReadResult struct {
	Path      string
	Pages     []string
	PageCount int
	Size      int64
}

// Word is a positioned text fragment with its bounding box, used by the
// spatial extraction strategy. Coordinates follow PDF conventions:
// origin at the bottom-left of the page, Top above Bottom.
type Word struct {
	Text   string
	X0     float64
	X1     float64
	Top    float64
	Bottom float64
}
