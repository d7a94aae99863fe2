//go:build cgo && astyle_cgo

package engine

/*
#cgo LDFLAGS: -lastyle
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

char* tideAStyleMain(const char* source, const char* options, uintptr_t handle);
const char* tideAStyleVersion(void);
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"unsafe"
)

func init() {
	Register("library", func(Config) (Engine, error) { return &Library{}, nil })
}

// Library calls a linked libastyle through AStyleMain.
type Library struct{}

//export tideAStyleError
func tideAStyleError(handle C.uintptr_t, code C.int, message *C.char) {
	if onError, ok := cgo.Handle(handle).Value().(ErrorHandler); ok {
		onError(int(code), C.GoString(message))
	}
}

// Format implements Engine. The library allocates with malloc; the result
// is copied into alloc's buffer and freed here.
func (l *Library) Format(source, options string, onError ErrorHandler, alloc Allocator) []byte {
	if onError == nil {
		onError = func(int, string) {}
	}
	h := cgo.NewHandle(onError)
	defer h.Delete()

	cSource := C.CString(source)
	defer C.free(unsafe.Pointer(cSource))
	cOptions := C.CString(options)
	defer C.free(unsafe.Pointer(cOptions))

	out := C.tideAStyleMain(cSource, cOptions, C.uintptr_t(h))
	if out == nil {
		return nil
	}
	defer C.free(unsafe.Pointer(out))

	n := int(C.strlen(out))
	buf := alloc(n)
	if len(buf) < n {
		onError(0, fmt.Sprintf("allocation of %d bytes failed", n))
		return nil
	}
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(out)), n))
	return buf
}

// Version implements Engine.
func (l *Library) Version() string {
	return C.GoString(C.tideAStyleVersion())
}
