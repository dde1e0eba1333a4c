package types

const (
	defaultLimit = 50
	MaximumLimit = 100
	MaximumPage  = 1000000
)

type Pagination struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

func (f *Pagination) Sanitize() {
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	} else if f.Limit > MaximumLimit {
		f.Limit = MaximumLimit
	}
}

// Window returns the [start, end) bounds of the page within n items.
func (f *Pagination) Window(n int) (int, int) {
	if f == nil {
		return 0, n
	}
	start := f.Skip
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := n
	if f.Limit >= 0 && f.Limit < n-start {
		end = start + f.Limit
	}
	return start, end
}
