package graphics

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// solidShaderSource maps logical-pixel vertices to NDC using a viewport
// uniform and passes premultiplied vertex colors straight through.
const solidShaderSource = `
struct Viewport {
    size: vec4<f32>,
};

@group(0) @binding(0) var<uniform> viewport: Viewport;

struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(1) color: vec4<f32>,
};

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    let ndc_x = in.position.x / viewport.size.x * 2.0 - 1.0;
    let ndc_y = 1.0 - in.position.y / viewport.size.y * 2.0;
    out.position = vec4<f32>(ndc_x, ndc_y, 0.0, 1.0);
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return in.color;
}
`

const (
	// solidVertexStride is 2 position floats + 4 color floats.
	solidVertexStride = 6 * 4

	// viewportUniformSize is a vec4 (width, height, unused, unused).
	viewportUniformSize = 16
)

// pipelineCache holds the lazily created solid-color render pipeline.
// One cache is shared by all primitives of a Context.
//
// pipelineCache is safe for concurrent use, though the toolkit itself is
// single-threaded.
type pipelineCache struct {
	mu sync.Mutex

	device        hal.Device
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
}

// ensure creates the pipeline for the device on first use.
func (pc *pipelineCache) ensure(device hal.Device) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.pipeline != nil {
		return nil
	}
	pc.device = device

	shader, err := createShaderModule(device, "ui_solid_shader", solidShaderSource)
	if err != nil {
		return fmt.Errorf("graphics: compile solid shader: %w", err)
	}
	pc.shader = shader

	uniformLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ui_solid_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		pc.destroyLocked()
		return fmt.Errorf("graphics: create uniform layout: %w", err)
	}
	pc.uniformLayout = uniformLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "ui_solid_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{pc.uniformLayout},
	})
	if err != nil {
		pc.destroyLocked()
		return fmt.Errorf("graphics: create pipeline layout: %w", err)
	}
	pc.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "ui_solid_pipeline",
		Layout: pc.pipeLayout,
		Vertex: hal.VertexState{
			Module:     pc.shader,
			EntryPoint: "vs_main",
			Buffers:    solidVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     pc.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		pc.destroyLocked()
		return fmt.Errorf("graphics: create solid pipeline: %w", err)
	}
	pc.pipeline = pipeline

	return nil
}

// destroy releases all pipeline resources in reverse creation order.
func (pc *pipelineCache) destroy() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.destroyLocked()
}

func (pc *pipelineCache) destroyLocked() {
	if pc.device == nil {
		return
	}
	if pc.pipeline != nil {
		pc.device.DestroyRenderPipeline(pc.pipeline)
		pc.pipeline = nil
	}
	if pc.pipeLayout != nil {
		pc.device.DestroyPipelineLayout(pc.pipeLayout)
		pc.pipeLayout = nil
	}
	if pc.uniformLayout != nil {
		pc.device.DestroyBindGroupLayout(pc.uniformLayout)
		pc.uniformLayout = nil
	}
	if pc.shader != nil {
		pc.device.DestroyShaderModule(pc.shader)
		pc.shader = nil
	}
}

// solidVertexLayout describes one interleaved vertex buffer: position then
// color.
func solidVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: solidVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}

// makeViewportUniform packs the viewport extent into the 16-byte uniform
// layout the solid shader expects.
func makeViewportUniform(w, h uint32) []byte {
	buf := make([]byte, viewportUniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(float32(w)))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(h)))
	return buf
}

// appendVertex packs one solid vertex (position + premultiplied color).
func appendVertex(dst []byte, x, y float32, color [4]float32) []byte {
	var tmp [solidVertexStride]byte
	binary.LittleEndian.PutUint32(tmp[0:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(tmp[4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(tmp[8:], math.Float32bits(color[0]))
	binary.LittleEndian.PutUint32(tmp[12:], math.Float32bits(color[1]))
	binary.LittleEndian.PutUint32(tmp[16:], math.Float32bits(color[2]))
	binary.LittleEndian.PutUint32(tmp[20:], math.Float32bits(color[3]))
	return append(dst, tmp[:]...)
}
