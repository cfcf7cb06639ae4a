// Package pool supplies pooled, size-classed byte-slice allocation. The
// tuple codec's buffer.Writer draws its backing array from one of these
// pools when constructed via NewWriterFromPool, so repeated Pack calls
// reuse backing arrays instead of allocating fresh ones. Its call-site
// contract (NewBuffPool, Get, Put) mirrors the one dolt's store/val package
// uses against its own (unexported) pool implementation.
package pool

import "sync"

// sizeClasses are the bucket sizes a BuffPool recycles. A request larger
// than the top bucket is allocated directly and never pooled.
var sizeClasses = []int{64, 256, 1024, 4096, 16384, 65536}

// BuffPool is a size-classed pool of reusable byte slices. It is safe for
// concurrent use; callers must not retain a slice obtained from Get after
// calling Put on it.
type BuffPool struct {
	classes []sync.Pool
}

// NewBuffPool constructs an empty BuffPool.
func NewBuffPool() *BuffPool {
	bp := &BuffPool{classes: make([]sync.Pool, len(sizeClasses))}
	return bp
}

// Get returns a []byte with length n, zeroed, drawn from the smallest size
// class that fits n when one is available, or freshly allocated otherwise.
func (p *BuffPool) Get(n int) []byte {
	idx := p.classFor(n)
	if idx < 0 {
		return make([]byte, n)
	}
	if v := p.classes[idx].Get(); v != nil {
		buf := v.([]byte)[:n]
		clear(buf)
		return buf
	}
	return make([]byte, n, sizeClasses[idx])
}

// Put returns buf to the pool for reuse. Put is a no-op for slices whose
// capacity does not match a known size class exactly, since such a slice
// was never handed out by Get.
func (p *BuffPool) Put(buf []byte) {
	c := cap(buf)
	for i, sz := range sizeClasses {
		if sz == c {
			p.classes[i].Put(buf[:0:c])
			return
		}
	}
}

func (p *BuffPool) classFor(n int) int {
	for i, sz := range sizeClasses {
		if n <= sz {
			return i
		}
	}
	return -1
}
