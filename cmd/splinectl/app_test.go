package main

import (
	"bytes"
	"errors"
	"os"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"honnef.co/go/spline"
)

// The handles are on the x axis, with the first and last repeated as margins.
const lineConfig = `type: centripetal
margins: explicit
handles:
  - [0, 0, 0]
  - [0, 0, 0]
  - [1, 0, 0]
  - [2, 0, 0]
  - [3, 0, 0]
  - [3, 0, 0]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	app := newApp(out)
	err := app.Run(append([]string{"splinectl"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	path := writeConfig(t, lineConfig)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"length", []string{"length"}, "3\n"},
		{"sample", []string{"sample", "--at", "1.5"},
			"location 1.5\nposition 1.5,0,0\ntangent 1,0,0\ncurvature 0,0,0\n"},
		{"sample end", []string{"sample", "--at", "3"},
			"location 3\nposition 3,0,0\ntangent 0.5,0,0\ncurvature -2,0,0\n"},
		{"sample arc", []string{"sample", "--arc", "--at", "1.5"},
			"location 1.5\nposition 1.5,0,0\ntangent 1,0,0\ncurvature 0,0,0\n"},
		{"normalize", []string{"normalize", "--at", "1.5"}, "1.5\n"},
		{"closest", []string{"closest", "--point", "1.5,5,0"},
			"location 1.5\narc 1.5\nposition 1.5,0,0\ndistance 5\n"},
		{"svg", []string{"svg", "--step", "1"}, "M0,0 L1,0 L2,0 L3,0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, append([]string{"-c", path}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got)
		})
	}
}

func TestArcLengthUsesSamples(t *testing.T) {
	for _, samples := range []int{2, 50} {
		t.Run(fmt.Sprint(samples), func(t *testing.T) {
			path := writeConfig(t, fmt.Sprintf(`type: chordal
samples: %d
handles:
  - [0, 0]
  - [2, 1]
  - [3, 4]
  - [7, 4]
  - [8, 0]
`, samples))
			length, err := run(t, "-c", path, "length", "--precision", "15")
			if err != nil {
				t.Fatal(err)
			}
			at := strings.TrimSpace(length)

			got, err := run(t, "-c", path, "normalize", "--at", at)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, "4\n", got)

			got, err = run(t, "-c", path, "sample", "--arc", "--at", at)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, "location 4", strings.SplitN(got, "\n", 2)[0])
		})
	}
}

func TestCommandErrors(t *testing.T) {
	valid := writeConfig(t, lineConfig)
	invalid := writeConfig(t, "handles:\n  - [1, 2]\n")

	t.Run("invalid spline", func(t *testing.T) {
		for _, cmd := range [][]string{{"length"}, {"sample", "--at", "0"}, {"closest", "--point", "0,0"}, {"svg"}} {
			_, err := run(t, append([]string{"-c", invalid}, cmd...)...)
			if !errors.Is(err, spline.ErrInvalidSpline) {
				t.Errorf("%v: got error %v, want invalid spline", cmd, err)
			}
		}
	})
	t.Run("out of range", func(t *testing.T) {
		_, err := run(t, "-c", valid, "sample", "--at", "3.5")
		var serr *spline.InvalidSplineError
		if !errors.As(err, &serr) {
			t.Fatalf("got error %v, want *spline.InvalidSplineError", err)
		}
		diff(t, 3.5, serr.Location)
	})
	t.Run("no config", func(t *testing.T) {
		if _, err := run(t, "length"); err == nil {
			t.Error("expected an error")
		}
	})
	t.Run("bad point", func(t *testing.T) {
		if _, err := run(t, "-c", valid, "closest", "--point", "1,x"); err == nil {
			t.Error("expected an error")
		}
	})
	t.Run("bad step", func(t *testing.T) {
		if _, err := run(t, "-c", valid, "svg", "--step", "0"); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("1, 2.5")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1.0, p.X)
	diff(t, 2.5, p.Y)
	diff(t, 0.0, p.Z)

	if _, err := parsePoint("1,2,3,4"); err == nil {
		t.Error("expected an error for four coordinates")
	}
}
