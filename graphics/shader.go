package graphics

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// compileWGSL compiles WGSL source to SPIR-V words via naga. SPIR-V is
// little-endian 32-bit words.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("graphics: compile shader: %w", err)
	}

	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// createShaderModule builds a HAL shader module from WGSL source. The
// source is run through naga first; backends that prefer SPIR-V get the
// compiled form, and if naga rejects the source we fall back to handing
// the backend the raw WGSL so its own compiler can report the error.
func createShaderModule(device hal.Device, label, source string) (hal.ShaderModule, error) {
	if code, err := compileWGSL(source); err == nil {
		return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  label,
			Source: hal.ShaderSource{SPIRV: code},
		})
	}

	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{WGSL: source},
	})
}
