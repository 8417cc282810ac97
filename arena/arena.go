// Package arena declares the allocation collaborator the parser engine
// depends on for all AST nodes, sequence containers, and owned byte/string
// buffers derived from token content, and provides a minimal reference
// implementation.
//
// Everything allocated through an Arena lives until the arena is freed,
// which happens exactly once, after the start rule returns, regardless of
// success (SPEC_FULL.md §3 Lifecycle). A real compiler's arena is likely a
// generation-tracked bump allocator tuned for its object layout; this
// reference implementation favors clarity over throughput.
package arena

// Arena is the capability set the parser engine requires of an allocator.
type Arena interface {
	// Alloc returns n zeroed bytes that remain valid until Free is called.
	Alloc(n int) []byte

	// Track registers obj to be released (if it implements io.Closer-like
	// cleanup) when the arena is freed. Used for heap objects that must
	// outlive the function that created them but still die with the
	// arena — e.g. a dummy-name AST node cached for the life of a parse.
	Track(obj any)

	// Free releases every byte slice and tracked object. Using the arena
	// or anything allocated from it after Free is undefined behavior,
	// exactly as in the source design.
	Free()
}

// bumpArena is a minimal reference Arena: one freshly allocated byte slice
// per Alloc call (kept in chunks), plus a slice of tracked objects released (in LIFO order, so later
// allocations that reference earlier ones tear down safely) on Free.
type bumpArena struct {
	chunks  [][]byte
	tracked []any
	freed   bool
}

// New returns a fresh, empty Arena.
func New() Arena {
	return &bumpArena{}
}

func (a *bumpArena) Alloc(n int) []byte {
	if a.freed {
		panic("arena: Alloc called after Free")
	}
	buf := make([]byte, n)
	a.chunks = append(a.chunks, buf)
	return buf
}

func (a *bumpArena) Track(obj any) {
	if a.freed {
		panic("arena: Track called after Free")
	}
	a.tracked = append(a.tracked, obj)
}

// Closer is implemented by tracked objects that need to run cleanup code
// when the arena is freed (e.g. releasing a file handle opened lazily
// during parsing). Tracked objects that don't implement Closer are simply
// dropped.
type Closer interface {
	Close() error
}

func (a *bumpArena) Free() {
	if a.freed {
		return
	}
	for i := len(a.tracked) - 1; i >= 0; i-- {
		if c, ok := a.tracked[i].(Closer); ok {
			_ = c.Close()
		}
	}
	a.tracked = nil
	a.chunks = nil
	a.freed = true
}
