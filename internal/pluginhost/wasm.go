// Package pluginhost loads and drives a formatter plugin compiled to WebAssembly: the "Wasm
// plugin loading" concern the core printer treats as an external collaborator (see package
// printer's doc comment). Sandboxing is structural, not policy: the host imports no host
// functions, so a loaded plugin can only compute over the byte buffers it is handed and cannot
// reach the filesystem, network, or process.
//
// A plugin exports: alloc(len int32) int32, dealloc(ptr, len int32), format(srcPtr, srcLen,
// cfgPtr, cfgLen int32) int64 (a packed outPtr<<32|outLen), and plugin_version() int32 (a pointer
// to a NUL-terminated semver string in its own memory).
package pluginhost

import (
	"encoding/json"
	"fmt"
	"os"

	version "github.com/hashicorp/go-version"
	"github.com/wasmerio/wasmer-go/wasmer"

	"github.com/teleivo/fmtcore/printer"
)

// MinCoreVersion is the lowest core printer version a plugin may declare compatibility with.
// Plugins built against an incompatible wire contract are rejected rather than risk
// misinterpreting their output.
const MinCoreVersion = "0.1.0"

// Plugin drives one loaded Wasm module. Unlike [printer.Format], which may run concurrently on
// independent roots, a Plugin is not safe for concurrent use; callers running multiple files in parallel should load one instance per
// goroutine or serialize calls.
type Plugin struct {
	instance *wasmer.Instance
	memory   *wasmer.Memory
	alloc    *wasmer.Function
	dealloc  *wasmer.Function
	formatFn *wasmer.Function
}

// Load reads, compiles, and instantiates the Wasm module at path, then verifies its declared
// version against [MinCoreVersion].
func Load(path string) (*Plugin, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plugin %s: %w", path, err)
	}

	store := wasmer.NewStore(wasmer.NewEngine())
	module, err := wasmer.NewModule(store, raw)
	if err != nil {
		return nil, fmt.Errorf("compiling plugin %s: %w", path, err)
	}

	instance, err := wasmer.NewInstance(module, wasmer.NewImportObject())
	if err != nil {
		return nil, fmt.Errorf("instantiating plugin %s: %w", path, err)
	}

	memory, err := instance.Exports.GetMemory("memory")
	if err != nil {
		return nil, fmt.Errorf("plugin %s does not export linear memory: %w", path, err)
	}
	alloc, err := instance.Exports.GetFunction("alloc")
	if err != nil {
		return nil, fmt.Errorf("plugin %s missing alloc export: %w", path, err)
	}
	dealloc, err := instance.Exports.GetFunction("dealloc")
	if err != nil {
		return nil, fmt.Errorf("plugin %s missing dealloc export: %w", path, err)
	}
	formatFn, err := instance.Exports.GetFunction("format")
	if err != nil {
		return nil, fmt.Errorf("plugin %s missing format export: %w", path, err)
	}

	p := &Plugin{instance: instance, memory: memory, alloc: alloc, dealloc: dealloc, formatFn: formatFn}
	if err := p.checkVersion(); err != nil {
		return nil, fmt.Errorf("plugin %s: %w", path, err)
	}
	return p, nil
}

func (p *Plugin) checkVersion() error {
	versionFn, err := p.instance.Exports.GetFunction("plugin_version")
	if err != nil {
		return fmt.Errorf("does not export plugin_version, refusing to trust an unversioned plugin")
	}
	ptr, err := versionFn()
	if err != nil {
		return fmt.Errorf("calling plugin_version: %w", err)
	}

	declared, err := version.NewVersion(p.readCString(asI64(ptr)))
	if err != nil {
		return fmt.Errorf("declared an invalid version: %w", err)
	}
	minVersion, err := version.NewVersion(MinCoreVersion)
	if err != nil {
		return err
	}
	if declared.LessThan(minVersion) {
		return fmt.Errorf("version %s predates the minimum supported %s", declared, minVersion)
	}
	return nil
}

// Format asks the plugin to format src under opts. Both the source and the marshalled options
// cross the Wasm boundary through buffers the plugin itself allocates; the plugin's response is
// copied out and its buffer freed before Format returns.
func (p *Plugin) Format(src string, opts printer.Options) (string, error) {
	cfg, err := json.Marshal(opts)
	if err != nil {
		return "", err
	}

	srcPtr, err := p.writeBuffer([]byte(src))
	if err != nil {
		return "", err
	}
	defer p.free(srcPtr, len(src))

	cfgPtr, err := p.writeBuffer(cfg)
	if err != nil {
		return "", err
	}
	defer p.free(cfgPtr, len(cfg))

	packed, err := p.formatFn(srcPtr, int32(len(src)), cfgPtr, int32(len(cfg)))
	if err != nil {
		return "", fmt.Errorf("plugin format call: %w", err)
	}

	outPtr, outLen := unpack(asI64(packed))
	defer p.free(outPtr, outLen)
	return string(p.readBytes(outPtr, outLen)), nil
}

func (p *Plugin) writeBuffer(data []byte) (int32, error) {
	ptr, err := p.alloc(int32(len(data)))
	if err != nil {
		return 0, fmt.Errorf("plugin alloc(%d): %w", len(data), err)
	}
	offset := int32(asI64(ptr))
	copy(p.memory.Data()[offset:], data)
	return offset, nil
}

func (p *Plugin) readBytes(ptr int32, length int) []byte {
	out := make([]byte, length)
	copy(out, p.memory.Data()[ptr:int(ptr)+length])
	return out
}

func (p *Plugin) readCString(ptr int64) string {
	data := p.memory.Data()
	end := int(ptr)
	for end < len(data) && data[end] != 0 {
		end++
	}
	return string(data[ptr:end])
}

func (p *Plugin) free(ptr int32, length int) {
	_, _ = p.dealloc(ptr, int32(length))
}

func asI64(v any) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	default:
		return 0
	}
}

func unpack(packed int64) (int32, int) {
	return int32(packed >> 32), int(int32(packed))
}
