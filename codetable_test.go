package huffpack

import (
	"math/rand"
	"strings"
	"testing"
)

// The classical worked example: frequencies {A:5 B:9 C:12 D:13 E:16 F:45}
// admit an optimal code with a weighted length of 224 bits per 100 symbols.
func classicTable(t *testing.T) (*FrequencyTable, *CodeTable) {
	t.Helper()
	var freqs FrequencyTable
	freqs['A'] = 5
	freqs['B'] = 9
	freqs['C'] = 12
	freqs['D'] = 13
	freqs['E'] = 16
	freqs['F'] = 45

	table, err := NewCodeTable(NewTree(&freqs))
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	return &freqs, table
}

func TestCodeTable_ClassicExample(t *testing.T) {
	_, table := classicTable(t)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tCode(65) = \"1100\"\n",
		"\tCode(66) = \"1101\"\n",
		"\tCode(67) = \"100\"\n",
		"\tCode(68) = \"101\"\n",
		"\tCode(69) = \"111\"\n",
		"\tCode(70) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeTable_Optimality(t *testing.T) {
	freqs, table := classicTable(t)

	var weighted uint64
	for sym := 0; sym < alphabetSize; sym++ {
		weighted += freqs[sym] * uint64(table.Code(byte(sym)).Size)
	}
	if weighted != 224 {
		t.Errorf("expected a weighted code length of 224 bits, got %d", weighted)
	}
}

func TestCodeTable_SingleSymbol(t *testing.T) {
	var freqs FrequencyTable
	freqs['A'] = 1000

	table, err := NewCodeTable(NewTree(&freqs))
	if err != nil {
		t.Fatalf("NewCodeTable failed: %v", err)
	}
	if got := table.Code('A').String(); got != "\"0\"" {
		t.Errorf("expected code \"0\", got %s", got)
	}
	if table.MinSize() != 1 || table.MaxSize() != 1 {
		t.Errorf("expected min/max size 1/1, got %d/%d", table.MinSize(), table.MaxSize())
	}
}

func TestCodeTable_PrefixProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		var freqs FrequencyTable
		distinct := 2 + rng.Intn(alphabetSize-1)
		for _, sym := range rng.Perm(alphabetSize)[:distinct] {
			freqs[sym] = uint64(1 + rng.Intn(10000))
		}

		table, err := NewCodeTable(NewTree(&freqs))
		if err != nil {
			t.Fatalf("trial %d: NewCodeTable failed: %v", trial, err)
		}

		var codes []Code
		for sym := 0; sym < alphabetSize; sym++ {
			hc := table.Code(byte(sym))
			if freqs[sym] == 0 {
				if hc.Size != 0 {
					t.Fatalf("trial %d: absent symbol %d received code %s", trial, sym, hc)
				}
				continue
			}
			if hc.Size == 0 {
				t.Fatalf("trial %d: symbol %d received no code", trial, sym)
			}
			codes = append(codes, hc)
		}

		for i, a := range codes {
			for j, b := range codes {
				if i != j && isPrefix(a, b) {
					t.Fatalf("trial %d: code %s is a prefix of %s", trial, a, b)
				}
			}
		}
	}
}

// isPrefix reports whether a's bit sequence is a proper prefix of b's.
func isPrefix(a, b Code) bool {
	if a.Size >= b.Size {
		return false
	}
	return b.Bits>>(b.Size-a.Size) == a.Bits
}
