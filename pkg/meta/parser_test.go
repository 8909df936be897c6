package meta

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string
		wantVal string
		wantErr bool
	}{
		{
			name:    "Basic Tags",
			input:   "nSavedChans=385\nsnsApLfSy=384,384,1\n",
			wantKey: "snsApLfSy",
			wantVal: "384,384,1",
		},
		{
			name:    "Tilde Stripped",
			input:   "~snsShankMap=(1,2,480)(0:0:0:1)\n",
			wantKey: "snsShankMap",
			wantVal: "(1,2,480)(0:0:0:1)",
		},
		{
			name:    "Value Contains Equals",
			input:   "imRoFile=C:\\maps\\default=1.imro\n",
			wantKey: "imRoFile",
			wantVal: "C:\\maps\\default=1.imro",
		},
		{
			name:    "CRLF Line Endings",
			input:   "imDatPrb_pn=NP2014\r\nnSavedChans=385\r\n",
			wantKey: "imDatPrb_pn",
			wantVal: "NP2014",
		},
		{
			name:    "Blank And Junk Lines Skipped",
			input:   "\njunk line without separator\nacqApLfSy=384,384,1\n",
			wantKey: "acqApLfSy",
			wantVal: "384,384,1",
		},
		{
			name:    "Empty File",
			input:   "",
			wantErr: true,
		},
		{
			name:    "No Pairs",
			input:   "just text\nmore text\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if v, ok := got[tt.wantKey]; !ok || v != tt.wantVal {
				t.Errorf("Parse()[%q] = %q (present=%v), want %q", tt.wantKey, v, ok, tt.wantVal)
			}
		})
	}
}

func TestParseDuplicateTagOverwrites(t *testing.T) {
	m, err := Parse(strings.NewReader("tag=first\ntag=second\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if m["tag"] != "second" {
		t.Errorf("duplicate tag = %q, want %q", m["tag"], "second")
	}
}

func TestParenGroups(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "Header Plus Entries",
			input: "(NP2014,4,250,70)(0:27:0:1)(1:5.5:15:0)",
			want:  []string{"NP2014,4,250,70", "0:27:0:1", "1:5.5:15:0"},
		},
		{
			name:  "Single Group",
			input: "(24,384)",
			want:  []string{"24,384"},
		},
		{
			name:    "Unclosed Group",
			input:   "(a)(b",
			wantErr: true,
		},
		{
			name:    "Stray Text Between Groups",
			input:   "(a)x(b)",
			wantErr: true,
		},
		{
			name:    "Nested Open",
			input:   "(a(b))",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParenGroups(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParenGroups() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParenGroups() = %v, want %v", got, tt.want)
			}
		})
	}
}
