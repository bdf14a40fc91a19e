package main

import "fmt"

// heapBase is where heap addresses start. User programs push and compute
// with these addresses directly, so the base is a stable contract.
const heapBase = 1000

// The heap is a dense linear array of cells. Variables are one allotted
// cell plus a name bound to its address; allot advances the frontier
// without binding anything.
type heap struct {
	cells []int
	names map[string]int
	limit int // cap on allotted cells, 0 for unlimited
}

type badAddressError int

func (addr badAddressError) Error() string { return fmt.Sprintf("No such address %v", int(addr)) }

type heapLimitError int

func (lim heapLimitError) Error() string {
	return fmt.Sprintf("Heap limit of %v cells exceeded", int(lim))
}

// create allocates one cell and binds name to its address. The caller is
// responsible for rejecting names already in use.
func (h *heap) create(name string) (int, error) {
	addr := h.frontier()
	if err := h.allot(1); err != nil {
		return 0, err
	}
	if h.names == nil {
		h.names = make(map[string]int)
	}
	h.names[name] = addr
	return addr, nil
}

// allot advances the frontier by n cells without binding a name. The
// frontier never moves backward: n below zero allots nothing.
func (h *heap) allot(n int) error {
	if n <= 0 {
		return nil
	}
	if h.limit != 0 && len(h.cells)+n > h.limit {
		return heapLimitError(h.limit)
	}
	h.cells = append(h.cells, make([]int, n)...)
	return nil
}

func (h *heap) addressOf(name string) (int, bool) {
	addr, ok := h.names[name]
	return addr, ok
}

func (h *heap) defined(name string) bool {
	_, ok := h.names[name]
	return ok
}

// frontier is the first unallocated address.
func (h *heap) frontier() int { return heapBase + len(h.cells) }

func (h *heap) get(addr int) (int, error) {
	if addr < heapBase || addr >= h.frontier() {
		return 0, badAddressError(addr)
	}
	return h.cells[addr-heapBase], nil
}

func (h *heap) set(addr, val int) error {
	if addr < heapBase || addr >= h.frontier() {
		return badAddressError(addr)
	}
	h.cells[addr-heapBase] = val
	return nil
}
