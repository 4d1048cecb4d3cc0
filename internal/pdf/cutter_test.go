package pdf

import (
	"reflect"
	"testing"
)

func TestParsePageSpec(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		totalPages int
		want       []int
		wantErr    bool
	}{
		{
			name:       "single page",
			spec:       "217",
			totalPages: 300,
			want:       []int{217},
		},
		{
			name:       "comma list",
			spec:       "1,3,5",
			totalPages: 10,
			want:       []int{1, 3, 5},
		},
		{
			name:       "range",
			spec:       "5-7",
			totalPages: 10,
			want:       []int{5, 6, 7},
		},
		{
			name:       "mixed with duplicates",
			spec:       "3,1,3,5-7,6",
			totalPages: 10,
			want:       []int{1, 3, 5, 6, 7},
		},
		{
			name:       "whitespace tolerated",
			spec:       " 1 , 3 - 4 ",
			totalPages: 10,
			want:       []int{1, 3, 4},
		},
		{
			name:       "empty spec",
			spec:       "   ",
			totalPages: 10,
			wantErr:    true,
		},
		{
			name:       "page out of bounds",
			spec:       "11",
			totalPages: 10,
			wantErr:    true,
		},
		{
			name:       "zero page",
			spec:       "0",
			totalPages: 10,
			wantErr:    true,
		},
		{
			name:       "reversed range",
			spec:       "7-5",
			totalPages: 10,
			wantErr:    true,
		},
		{
			name:       "range out of bounds",
			spec:       "8-12",
			totalPages: 10,
			wantErr:    true,
		},
		{
			name:       "garbage",
			spec:       "abc",
			totalPages: 10,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageSpec(tt.spec, tt.totalPages)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePageSpec(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestCutterExtractPagesNoPages(t *testing.T) {
	cutter := NewCutter()
	if err := cutter.ExtractPages("in.pdf", nil, "out.pdf"); err == nil {
		t.Error("expected error for empty page list")
	}
}

func TestCutterPageCountMissingFile(t *testing.T) {
	cutter := NewCutter()
	if _, err := cutter.PageCount("/non/existent/file.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}
