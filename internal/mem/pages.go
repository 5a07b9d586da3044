// Package mem implements a sparse, paged store addressed by unsigned integer.
package mem

import "fmt"

// DefaultPageSize provides a default for Pages.PageSize.
const DefaultPageSize = 64

// Pages implements a paged memory of T values. Unallocated addresses read as
// the zero T. Pages may not necessarily be the same size, but usually are in
// practice.
type Pages[T any] struct {
	// PageSize specifies the length for newly allocated pages.
	PageSize uint

	// Limit specifies a limit, past which any store or load should result in an error.
	Limit uint

	bases []uint
	pages [][]T
}

// LimitError indicates that a memory operation, like load or store, exceeded a limit.
type LimitError struct {
	Addr uint
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v @%v", lim.Op, lim.Addr)
}

// Size returns an address one position higher than the last position in the
// last page allocated so far.
func (m *Pages[T]) Size() uint {
	if i := len(m.bases) - 1; i >= 0 {
		return m.bases[i] + uint(len(m.pages[i]))
	}
	return 0
}

// Load returns the value stored at addr, or the zero value if nothing was.
// Returns an error if addr exceeds any Limit.
func (m *Pages[T]) Load(addr uint) (val T, err error) {
	if err := m.checkLimit(addr, "load"); err != nil {
		return val, err
	}
	if len(m.pages) == 0 {
		return val, nil
	}
	pageID := m.findPage(addr)
	base := m.bases[pageID]
	page := m.pages[pageID]
	if i := int(addr) - int(base); 0 <= i && i < len(page) {
		return page[i], nil
	}
	return val, nil
}

// Stor stores values starting at addr, allocating pages if necessary.
// Returns an error if Limit would be exceeded; no partial store is done.
func (m *Pages[T]) Stor(addr uint, values ...T) error {
	if len(values) == 0 {
		return nil
	}

	end := addr + uint(len(values))
	if err := m.checkLimit(end-1, "stor"); err != nil {
		return err
	}

	if m.PageSize == 0 {
		m.PageSize = DefaultPageSize
	}

	for pageID := m.findPage(addr); addr < end; pageID++ {
		base, size, page := m.allocPage(pageID, addr)
		if skip := int(addr) - int(base); skip > 0 {
			if uint(skip) >= size {
				continue
			}
			page = page[skip:]
		}
		n := copy(page, values)
		values = values[n:]
		addr += uint(n)
	}

	return nil
}

// Each calls fn with every allocated address and its value, in address
// order, until fn returns false.
func (m *Pages[T]) Each(fn func(addr uint, val T) bool) {
	for pageID, page := range m.pages {
		base := m.bases[pageID]
		for i, val := range page {
			if !fn(base+uint(i), val) {
				return
			}
		}
	}
}

func (m *Pages[T]) checkLimit(addr uint, op string) error {
	if maxSize := m.Limit; maxSize != 0 && addr > maxSize {
		return LimitError{addr, op}
	}
	return nil
}

func (m *Pages[T]) findPage(addr uint) int {
	i, j := 0, len(m.bases)
	for i < j {
		h := int(uint(i+j)>>1) + 1
		if h < len(m.bases) && m.bases[h] <= addr {
			i = h
		} else {
			j = h - 1
		}
	}
	return i
}

func (m *Pages[T]) allocPage(pageID int, addr uint) (base, size uint, page []T) {
	// append a new last page, trimmed so that it does not overlap its predecessor
	if pageID == len(m.bases) {
		base = addr / m.PageSize * m.PageSize
		size = m.PageSize
		if i := len(m.bases) - 1; i >= 0 {
			if lastEnd := m.bases[i] + uint(len(m.pages[i])); base < lastEnd {
				size -= lastEnd - base
				base = lastEnd
			}
		}
		page = make([]T, size)
		m.bases = append(m.bases, base)
		m.pages = append(m.pages, page)
		return base, size, page
	}

	// insert a page into the hole before pageID
	if base = m.bases[pageID]; addr < base {
		nextBase := base
		base = addr / m.PageSize * m.PageSize
		size = m.PageSize
		if gapSize := nextBase - base; size > gapSize {
			size = gapSize
		}
		page = make([]T, size)
		m.bases = append(m.bases, 0)
		m.pages = append(m.pages, nil)
		copy(m.bases[pageID+1:], m.bases[pageID:])
		copy(m.pages[pageID+1:], m.pages[pageID:])
		m.bases[pageID] = base
		m.pages[pageID] = page
		return base, size, page
	}

	page = m.pages[pageID]
	return base, uint(len(page)), page
}
