package pia_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pia-go/pia"
)

func TestPrint(t *testing.T) {
	a := newArray(t, 3, 9)
	a.Set(2, 4)
	a.Set(4, 5)

	buf := new(bytes.Buffer)
	pia.Print(buf, a)
	out := buf.String()

	for _, s := range []string{"INDEX", "VALUE", "BITS", "100", "101", "000"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in printed output:\n%s", s, out)
		}
	}

	// Top border, header, separator, one row per item, bottom border.
	if want, got := a.Len()+4, strings.Count(out, "\n"); want != got {
		t.Errorf("wrong number of lines: want=%d got=%d\n%s", want, got, out)
	}
}

func TestString(t *testing.T) {
	a := newArray(t, 3, 9)
	a.Set(2, 4)
	a.Set(4, 5)

	assertText(t, "[0 0 4 0 5 0 0 0 0]", a.String())
}
