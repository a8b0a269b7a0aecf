// Package main builds the mirror filter as a native module:
//
//	go build -buildmode=c-shared -o libmirror_plugin.so ./plugins/mirror
//
// The exported process_image entry point follows the filter ABI and lets
// foreign hosts (or this repository's own native loader) apply the flips
// without linking Go code.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/pixfilter/filter"
	"github.com/gogpu/pixfilter/filter/mirror"
)

//export process_image
func process_image(width, height C.uint32_t, pixels *C.uint8_t, params *C.char) C.uint32_t {
	if pixels == nil {
		return C.uint32_t(filter.StatusNoOp)
	}

	total, ok := filter.BufferLen(uint32(width), uint32(height))
	if !ok || total == 0 {
		return C.uint32_t(filter.StatusNoOp)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(pixels)), total)

	var config string
	if params != nil {
		config = C.GoString(params)
	}

	return C.uint32_t(mirror.New().Process(uint32(width), uint32(height), buf, config))
}

func main() {}
