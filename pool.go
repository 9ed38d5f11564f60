// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package show

import (
	"bytes"
	"sync"
)

// Render buffers are recycled across Show calls. bytes.Buffer.String copies,
// so a released buffer never aliases a string handed to the caller.
// Buffers that grew past maxPooledBuffer are dropped instead of pooled.

const maxPooledBuffer = 64 << 10

var bufferPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// acquireBuffer returns an empty buffer from the pool.
func acquireBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// releaseBuffer resets b and returns it to the pool.
func releaseBuffer(b *bytes.Buffer) {
	if b.Cap() > maxPooledBuffer {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}
