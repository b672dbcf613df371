package simd

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func randDNA(rng *rand.Rand, n int) []byte {
	const bases = "ICFP"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[rng.Intn(4)]
	}
	return b
}

func TestMemchr(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{"empty", "", 'I', -1},
		{"first", "ICFP", 'I', 0},
		{"middle", "ICFP", 'F', 2},
		{"last", "ICFP", 'P', 3},
		{"absent", "IIII", 'P', -1},
		{"repeated_first_wins", "ICICIC", 'C', 1},
		{"long_tail", strings.Repeat("I", 33) + "P", 'P', 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memchr([]byte(tt.haystack), tt.needle)
			if got != tt.want {
				t.Errorf("Memchr(%q, %c) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

func TestMemchrMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		h := randDNA(rng, rng.Intn(200))
		n := byte("ICFP"[rng.Intn(4)])
		if got, want := Memchr(h, n), bytes.IndexByte(h, n); got != want {
			t.Fatalf("Memchr(%q, %c) = %d, stdlib %d", h, n, got, want)
		}
	}
}

func TestMemmem(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty_needle", "ICFP", "", 0},
		{"needle_too_long", "IC", "ICFP", -1},
		{"single_byte", "IICF", "C", 1},
		{"at_start", "ICFPIC", "ICFP", 0},
		{"at_end", "IIIIICFP", "ICFP", 4},
		{"absent", "IIIICCCC", "ICFP", -1},
		{"overlapping_candidates", "ICICICFP", "ICFP", 4},
		{"first_of_many", "ICFPICFP", "ICFP", 0},
		{"self", "ICFP", "ICFP", 0},
		{"search_target", "IIIIIIIIIIICFPFF", "ICFP", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memmem([]byte(tt.haystack), []byte(tt.needle))
			if got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

// TestMemmemMatchesStdlib cross-checks both strategies against
// bytes.Index on random DNA, including needles sampled from the
// haystack so matches actually occur.
func TestMemmemMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		h := randDNA(rng, 1+rng.Intn(500))
		var n []byte
		if rng.Intn(2) == 0 && len(h) > 2 {
			lo := rng.Intn(len(h) - 1)
			hi := lo + 1 + rng.Intn(min(len(h)-lo, 40))
			n = h[lo:hi]
		} else {
			n = randDNA(rng, 1+rng.Intn(12))
		}
		if got, want := Memmem(h, n), bytes.Index(h, n); got != want {
			t.Fatalf("Memmem(%q, %q) = %d, stdlib %d", h, n, got, want)
		}
		// Exercise both code paths regardless of the host CPU.
		if len(n) >= 2 {
			if got, want := memmemRare(h, n), bytes.Index(h, n); got != want {
				t.Fatalf("memmemRare(%q, %q) = %d, stdlib %d", h, n, got, want)
			}
			if got, want := memmemSWAR(h, n), bytes.Index(h, n); got != want {
				t.Fatalf("memmemSWAR(%q, %q) = %d, stdlib %d", h, n, got, want)
			}
		}
	}
}

func TestSelectRareByte(t *testing.T) {
	tests := []struct {
		needle  string
		want    byte
		wantIdx int
	}{
		{"I", 'I', 0},
		{"ICFP", 'P', 3},
		{"ICF", 'F', 2},
		{"IIC", 'C', 2},
		{"PIP", 'P', 0},
	}
	for _, tt := range tests {
		b, idx := selectRareByte([]byte(tt.needle))
		if b != tt.want || idx != tt.wantIdx {
			t.Errorf("selectRareByte(%q) = %c, %d; want %c, %d", tt.needle, b, idx, tt.want, tt.wantIdx)
		}
	}
}

func BenchmarkMemmemDNA(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	h := randDNA(rng, 1<<20)
	needle := h[len(h)-24:]
	b.SetBytes(int64(len(h)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if Memmem(h, needle) < 0 {
			b.Fatal("needle not found")
		}
	}
}
