package utils

// History remembers the hashes of the last few generations so a driver can
// notice a still life or a short-period oscillator.
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a history holding at most size hashes.
func NewHistory(size int) *History {
	return &History{size: size}
}

// Observe records hash and reports whether it matched one of the remembered
// hashes, i.e. the board has cycled with a period no longer than the history.
func (h *History) Observe(hash string) bool {
	repeated := false
	for _, seen := range h.hashes {
		if seen == hash {
			repeated = true
			break
		}
	}

	if h.size <= 0 {
		return repeated
	}
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Reset forgets every remembered hash
func (h *History) Reset() {
	h.hashes = nil
}
