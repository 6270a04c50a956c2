package finder

import (
	"errors"
	"reflect"
	"testing"
)

func TestWordStarts(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		want   []int
	}{
		{
			name:   "three words",
			buffer: "abc abc abc",
			want:   []int{1, 5, 9},
		},
		{
			name:   "empty buffer",
			buffer: "",
			want:   []int{},
		},
		{
			name:   "leading and trailing whitespace",
			buffer: "  foo bar  ",
			want:   []int{3, 7},
		},
		{
			name:   "underscore joins runs",
			buffer: "foo_bar baz",
			want:   []int{1, 9},
		},
		{
			name:   "punctuation splits runs",
			buffer: "a/b/c",
			want:   []int{1, 3, 5},
		},
		{
			name:   "digits are word runes",
			buffer: "x1 22y",
			want:   []int{1, 4},
		},
		{
			name:   "only punctuation",
			buffer: "... !!!",
			want:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordStarts(tt.buffer)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordStarts(%q) = %v, want %v", tt.buffer, got, tt.want)
			}
		})
	}
}

func TestWordEnds(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		want   []int
	}{
		{
			name:   "three words",
			buffer: "abc abc abc",
			want:   []int{3, 7, 11},
		},
		{
			name:   "empty buffer",
			buffer: "",
			want:   []int{},
		},
		{
			name:   "single rune words",
			buffer: "a b c",
			want:   []int{1, 3, 5},
		},
		{
			name:   "word at end of buffer",
			buffer: "foo bar",
			want:   []int{3, 7},
		},
		{
			name:   "underscore joins runs",
			buffer: "foo_bar baz",
			want:   []int{7, 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordEnds(tt.buffer)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordEnds(%q) = %v, want %v", tt.buffer, got, tt.want)
			}
		})
	}
}

func TestOccurrences(t *testing.T) {
	tests := []struct {
		name   string
		ch     rune
		mode   CaseMode
		buffer string
		want   []int
	}{
		{
			name:   "slash default",
			ch:     '/',
			mode:   CaseDefault,
			buffer: "a/b/c",
			want:   []int{2, 4},
		},
		{
			name:   "literal lowercase default",
			ch:     'a',
			mode:   CaseDefault,
			buffer: "a A a",
			want:   []int{1, 5},
		},
		{
			name:   "ignorecase matches both",
			ch:     'a',
			mode:   CaseIgnore,
			buffer: "a A a",
			want:   []int{1, 3, 5},
		},
		{
			name:   "smartcase lowercase matches both",
			ch:     'a',
			mode:   CaseSmart,
			buffer: "a A a",
			want:   []int{1, 3, 5},
		},
		{
			name:   "smartcase uppercase stays literal",
			ch:     'A',
			mode:   CaseSmart,
			buffer: "a A a",
			want:   []int{3},
		},
		{
			name:   "ignorecase punctuation stays literal",
			ch:     '.',
			mode:   CaseIgnore,
			buffer: "a.b.c",
			want:   []int{2, 4},
		},
		{
			name:   "regex metacharacter is quoted",
			ch:     '.',
			mode:   CaseDefault,
			buffer: "a.bc.",
			want:   []int{2, 5},
		},
		{
			name:   "no occurrences",
			ch:     'z',
			mode:   CaseDefault,
			buffer: "abc",
			want:   []int{},
		},
		{
			name:   "multibyte runes before match",
			ch:     'x',
			mode:   CaseDefault,
			buffer: "héllo x",
			want:   []int{7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Occurrences(tt.ch, tt.mode, tt.buffer)
			if err != nil {
				t.Fatalf("Occurrences(%q, %v, %q) returned error: %v", tt.ch, tt.mode, tt.buffer, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Occurrences(%q, %v, %q) = %v, want %v", tt.ch, tt.mode, tt.buffer, got, tt.want)
			}
		})
	}
}

func TestPatternRejectsUnprintable(t *testing.T) {
	for _, ch := range []rune{0x00, 0x1b, '\n', '\t'} {
		if _, err := Pattern(ch, CaseDefault); !errors.Is(err, ErrInvalidSearchChar) {
			t.Errorf("Pattern(%q) error = %v, want ErrInvalidSearchChar", ch, err)
		}
	}
}

func TestParseCaseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    CaseMode
		wantErr bool
	}{
		{in: "default", want: CaseDefault},
		{in: "", want: CaseDefault},
		{in: "ignorecase", want: CaseIgnore},
		{in: "smartcase", want: CaseSmart},
		{in: "SmartCase", want: CaseSmart},
		{in: "fuzzy", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseCaseMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCaseMode) {
				t.Errorf("ParseCaseMode(%q) error = %v, want ErrUnknownCaseMode", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCaseMode(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCaseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCaseModeString(t *testing.T) {
	tests := []struct {
		mode CaseMode
		want string
	}{
		{mode: CaseDefault, want: "default"},
		{mode: CaseIgnore, want: "ignorecase"},
		{mode: CaseSmart, want: "smartcase"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
