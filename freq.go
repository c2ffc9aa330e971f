package huffpack

import (
	"encoding/json"
	"strconv"
)

// alphabetSize is the number of distinct byte values.
const alphabetSize = 256

// FrequencyTable counts how many times each byte value occurs in an input.
// The zero value is an empty table.
type FrequencyTable [alphabetSize]uint64

// CountBytes tallies every byte of input into a fresh table.
func CountBytes(input []byte) *FrequencyTable {
	var ft FrequencyTable
	for _, b := range input {
		ft[b]++
	}
	return &ft
}

// Merge adds every count in other to ft.  Counting shards of an input
// separately and merging them gives the same table as counting the input
// whole, in any merge order.
func (ft *FrequencyTable) Merge(other *FrequencyTable) {
	for i, freq := range other {
		ft[i] += freq
	}
}

// Distinct returns the number of byte values with a nonzero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum += freq
	}
	return sum
}

// MarshalJSON renders the table as a JSON object mapping each symbol with a
// nonzero count to its frequency.
func (ft *FrequencyTable) MarshalJSON() ([]byte, error) {
	obj := make(map[string]uint64, ft.Distinct())
	for sym, freq := range ft {
		if freq != 0 {
			obj[strconv.Itoa(sym)] = freq
		}
	}
	return json.Marshal(obj)
}

// UnmarshalJSON replaces the table's contents with the entries of a JSON
// object produced by MarshalJSON.
func (ft *FrequencyTable) UnmarshalJSON(raw []byte) error {
	var obj map[string]uint64
	if err := json.Unmarshal(raw, &obj); err != nil {
		return err
	}
	var out FrequencyTable
	for key, freq := range obj {
		sym, err := strconv.ParseUint(key, 10, 8)
		if err != nil {
			return err
		}
		out[sym] = freq
	}
	*ft = out
	return nil
}

var _ json.Marshaler = (*FrequencyTable)(nil)
var _ json.Unmarshaler = (*FrequencyTable)(nil)
