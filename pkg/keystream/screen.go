package keystream

func (st *State) next() byte {
	st.i++
	st.j += st.s[st.i]
	st.s[st.i], st.s[st.j] = st.s[st.j], st.s[st.i]
	return st.s[st.s[st.i]+st.s[st.j]]
}

func (st *State) screen(b byte) byte {
	return b ^ st.next()
}

// XORKeyStream applies the keystream to buf in place, advancing the State by len(buf) bytes.
func (st *State) XORKeyStream(buf []byte) {
	for n := range buf {
		buf[n] = st.screen(buf[n])
	}
}

// Apply schedules a fresh State for key and applies its keystream to buf in place.
// Calling Apply twice with the same key restores the original contents of buf.
func Apply(key uint64, buf []byte) {
	Schedule(key).XORKeyStream(buf)
}
