package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestRender(t *testing.T) {
	tests := map[string]struct {
		tmpl   string
		data   any
		exp    string
		expErr string
	}{
		"plain field": {
			tmpl: "{{ .Name }} is ready",
			data: struct{ Name string }{"Keg"},
			exp:  "Keg is ready",
		},
		"sprig function": {
			tmpl: "{{ .Name | upper }}",
			data: struct{ Name string }{"keg"},
			exp:  "KEG",
		},
		"parse error": {
			tmpl:   "{{ .Name",
			data:   nil,
			expErr: "parsing template",
		},
		"execute error": {
			tmpl:   "{{ .Missing }}",
			data:   struct{ Name string }{"keg"},
			expErr: "executing template",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "output", got, tt.exp)
		})
	}
}

func TestTickFailure(t *testing.T) {
	got := TickFailure("farm")

	if !strings.Contains(got, "Farm") {
		t.Errorf("expected notice to name the location, got %q", got)
	}
	if strings.Contains(got, "{{") {
		t.Errorf("expected expanded template, got %q", got)
	}
}

func TestTransfer(t *testing.T) {
	got := Transfer("farm", "keg", "wine", 1)

	for _, want := range []string{"Keg", "Farm", "1x wine"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected notice to contain %q, got %q", want, got)
		}
	}
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("automation ", 20)

	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line longer than %d chars: %q", DefaultWidth, line)
		}
	}
}

func TestCapitalize(t *testing.T) {
	testutil.AssertEqual(t, "word", Capitalize("farm"), "Farm")
	testutil.AssertEqual(t, "already capitalized", Capitalize("Farm"), "Farm")
	testutil.AssertEqual(t, "empty", Capitalize(""), "")
}
