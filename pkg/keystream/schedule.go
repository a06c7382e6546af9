package keystream

const (
	stateSize = 256
	keyBits   = 64
)

// State is the permutation and cursor pair shared between the key schedule and keystream generation.
// A State is not safe for concurrent use, but independent States share nothing.
type State struct {
	s    [stateSize]byte
	i, j uint8
}

// Schedule creates a new State scrambled by the given key.
// The cursors left behind by the schedule are the starting cursors for the keystream.
func Schedule(key uint64) *State {
	st := new(State)
	for n := 0; n < stateSize; n++ {
		st.s[n] = byte(n)
	}
	for round := 0; round < stateSize; round++ {
		bit := byte((key >> (uint(st.i) % keyBits)) & 1)
		st.j += st.s[st.i] + bit
		st.s[st.i], st.s[st.j] = st.s[st.j], st.s[st.i]
		st.i++
	}
	return st
}

// Permutation returns a copy of the current permutation.
func (st *State) Permutation() [stateSize]byte {
	return st.s
}

// Cursors returns the current cursor pair.
func (st *State) Cursors() (i, j uint8) {
	return st.i, st.j
}
