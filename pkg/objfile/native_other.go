//go:build !linux && !darwin && !windows

package objfile

import (
	"fmt"

	"objview/pkg/obj"
)

// NativeFile aliases File on every remaining host (§6's "wasm host→Wasm"
// case). ParseNative still dispatches through the general sniffer; the
// alias only documents that Wasm is this platform's native format.
type NativeFile = File

// ParseNative parses data and requires it to be a Wasm module, the native
// format on this platform.
func ParseNative(data []byte) (*NativeFile, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if f.Format() != obj.FormatWasm {
		return nil, fmt.Errorf("objfile: expected native Wasm format, got %v", f.Format())
	}
	return f, nil
}
