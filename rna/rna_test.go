package rna

import (
	"bytes"
	"testing"
)

func TestList(t *testing.T) {
	var l List
	for _, cmd := range []string{"ICFPICF", "PPPPPPP", "IIIIIII"} {
		if err := l.Push([]byte(cmd)); err != nil {
			t.Fatal(err)
		}
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	want := []string{"ICFPICF", "PPPPPPP", "IIIIIII"}
	for i, cmd := range l.Commands() {
		if cmd != want[i] {
			t.Errorf("Commands()[%d] = %q, want %q", i, cmd, want[i])
		}
	}
	if got := l.Join(); got != "ICFPICFPPPPPPPIIIIIII" {
		t.Errorf("Join() = %q", got)
	}
}

func TestListCopiesCommand(t *testing.T) {
	var l List
	buf := []byte("ICFPICF")
	l.Push(buf)
	copy(buf, "PPPPPPP")
	if l.Commands()[0] != "ICFPICF" {
		t.Error("List retained the caller's buffer")
	}
}

func TestStream(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	s.Push([]byte("ICFPICF"))
	s.Push([]byte("CCCCCCC"))
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "ICFPICFCCCCCCC" {
		t.Errorf("stream output = %q", got)
	}
	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}
}

func TestCount(t *testing.T) {
	var c Count
	for i := 0; i < 5; i++ {
		c.Push([]byte("ICFPICF"))
	}
	if c != 5 {
		t.Errorf("Count = %d, want 5", c)
	}
}
