package runner

// History is a fixed-capacity price ring: once full, each push evicts the
// oldest sample. Values come back oldest first.
type History struct {
	values []float64
	size   int
	index  int
	filled bool
}

func NewHistory(size int) *History {
	return &History{
		values: make([]float64, size),
		size:   size,
	}
}

func (h *History) Push(value float64) {
	h.values[h.index] = value
	h.index = (h.index + 1) % h.size
	if h.index == 0 {
		h.filled = true
	}
}

func (h *History) Len() int {
	if h.filled {
		return h.size
	}
	return h.index
}

func (h *History) Values() []float64 {
	length := h.Len()
	result := make([]float64, 0, length)
	if length == 0 {
		return result
	}
	if h.filled {
		result = append(result, h.values[h.index:]...)
	}
	result = append(result, h.values[:h.index]...)
	return result
}
