// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pixbuf"
)

// Context implements pixbuf.Context over the wgpu HAL.
//
// Transfer calls carry no error return (per the contract); allocation and
// write failures are reported through the pixbuf logger and the call is
// dropped, mirroring how a GL driver latches errors instead of raising.
//
// Context is safe for concurrent use, though pixbuf itself issues calls
// sequentially.
type Context struct {
	mu sync.Mutex

	// GPU resources. instance is nil for shared devices.
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	// ownsDevice is true when New created the device and Close must
	// destroy it. Borrowed devices (NewShared) are left alone.
	ownsDevice bool

	// One texture per target, matching the GL binding model.
	targets map[pixbuf.Enum]*boundTexture

	// Unpack state set via PixelStore.
	premultiply       bool
	warnedPremultiply bool

	closed bool
}

// boundTexture is the allocation currently bound to a texture target.
type boundTexture struct {
	tex           hal.Texture
	width         int
	height        int
	format        gputypes.TextureFormat
	bytesPerTexel int
}

// New creates a Context with its own GPU device.
// The adapter selection prefers discrete and integrated GPUs.
func New() (*Context, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not available", ErrNoGPU)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoGPU
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	pixbuf.Logger().Info("wgpu: context initialized", "adapter", selected.Info.Name)

	return &Context{
		instance:   instance,
		device:     openDev.Device,
		queue:      openDev.Queue,
		ownsDevice: true,
		targets:    make(map[pixbuf.Enum]*boundTexture),
	}, nil
}

// NewShared creates a Context on a device borrowed from provider, typically
// a gogpu application context. The provider must expose HAL handles
// (gpucontext.HalProvider); Close will not destroy the borrowed device.
func NewShared(provider gpucontext.DeviceProvider) (*Context, error) {
	hp, ok := provider.(gpucontext.HalProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}

	return &Context{
		device:  device,
		queue:   queue,
		targets: make(map[pixbuf.Enum]*boundTexture),
	}, nil
}

// Close releases all textures and, for owned devices, the device and
// instance. Close is idempotent.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for target, bt := range c.targets {
		c.device.DestroyTexture(bt.tex)
		delete(c.targets, target)
	}

	if c.ownsDevice {
		if c.device != nil {
			c.device.Destroy()
		}
		if c.instance != nil {
			c.instance.Destroy()
		}
	}
	c.device = nil
	c.queue = nil
	c.instance = nil
}

// Texture returns the HAL texture currently allocated for target, so the
// rendering pipeline can bind it. Returns false if no allocation exists.
func (c *Context) Texture(target pixbuf.Enum) (hal.Texture, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	bt, ok := c.targets[target]
	if !ok {
		return nil, false
	}
	return bt.tex, true
}

// HalDevice returns the underlying HAL device.
// Context itself satisfies the HAL provider shape, so it can hand its
// device on to other gogpu consumers.
func (c *Context) HalDevice() any { return c.device }

// HalQueue returns the underlying HAL queue.
func (c *Context) HalQueue() any { return c.queue }

// HasExtension reports driver extension support. The HAL does not surface
// adapter feature bits for block compression, so all compression extension
// families read as absent and pixbuf takes the uncompressed path.
//
// TODO: report BC/ETC2 families once hal.ExposedAdapter exposes features.
func (c *Context) HasExtension(name string) bool {
	_ = name
	return false
}

// CompressedTextureFormats returns the supported compressed formats.
// Empty until compression extensions are reported (see HasExtension).
func (c *Context) CompressedTextureFormats() []pixbuf.Enum {
	return nil
}

// PixelStore sets a pixel transfer parameter.
func (c *Context) PixelStore(pname pixbuf.Enum, param int) {
	if pname != pixbuf.UnpackPremultiplyAlpha {
		return
	}
	c.mu.Lock()
	c.premultiply = param != 0
	c.mu.Unlock()
}

// TexImage2D allocates a texture for target and writes the full buffer.
// An existing allocation for the same target is destroyed first.
func (c *Context) TexImage2D(target pixbuf.Enum, level int, internalFormat pixbuf.Enum, width, height, border int, format, typ pixbuf.Enum, data []byte) {
	if level != 0 || border != 0 {
		pixbuf.Logger().Warn("wgpu: only level 0, border 0 uploads supported", "level", level, "border", border)
		return
	}
	halFormat, texelSize, ok := texelFormat(internalFormat, typ)
	if !ok {
		pixbuf.Logger().Warn("wgpu: unsupported texture format",
			"internalFormat", internalFormat, "type", typ)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.device == nil {
		return
	}

	if bt, exists := c.targets[target]; exists {
		c.device.DestroyTexture(bt.tex)
		delete(c.targets, target)
	}

	desc := &hal.TextureDescriptor{
		Label: "pixbuf",
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        halFormat,
		Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	}
	tex, err := c.device.CreateTexture(desc)
	if err != nil {
		pixbuf.Logger().Warn("wgpu: texture allocation failed",
			"width", width, "height", height, "err", err)
		return
	}

	bt := &boundTexture{
		tex:           tex,
		width:         width,
		height:        height,
		format:        halFormat,
		bytesPerTexel: texelSize,
	}
	c.targets[target] = bt
	c.write(bt, 0, 0, width, height, data)
}

// TexSubImage2D writes into the existing allocation for target.
func (c *Context) TexSubImage2D(target pixbuf.Enum, level, x, y, width, height int, format, typ pixbuf.Enum, data []byte) {
	if level != 0 {
		pixbuf.Logger().Warn("wgpu: only level 0 uploads supported", "level", level)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.device == nil {
		return
	}
	bt, ok := c.targets[target]
	if !ok {
		pixbuf.Logger().Warn("wgpu: sub-image write without allocated storage", "target", target)
		return
	}
	c.write(bt, x, y, width, height, data)
}

// CompressedTexImage2D is unreachable through pixbuf with this backend
// (no compression extension is reported); a direct call is dropped.
func (c *Context) CompressedTexImage2D(target pixbuf.Enum, level int, format pixbuf.Enum, width, height, border int, data []byte) {
	pixbuf.Logger().Warn("wgpu: compressed uploads not supported", "format", format)
}

// CompressedTexSubImage2D is unreachable through pixbuf with this backend;
// a direct call is dropped.
func (c *Context) CompressedTexSubImage2D(target pixbuf.Enum, level, x, y, width, height int, format pixbuf.Enum, data []byte) {
	pixbuf.Logger().Warn("wgpu: compressed uploads not supported", "format", format)
}

// write queues a texture write. Caller must hold c.mu.
func (c *Context) write(bt *boundTexture, x, y, width, height int, data []byte) {
	if c.premultiply && !c.warnedPremultiply {
		// WriteTexture copies bytes as-is; there is no unpack stage.
		pixbuf.Logger().Warn("wgpu: premultiply-alpha unpack not supported; supply premultiplied data")
		c.warnedPremultiply = true
	}

	dst := &hal.ImageCopyTexture{
		Texture:  bt.tex,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: uint32(x), Y: uint32(y), Z: 0},
		Aspect:   gputypes.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(width * bt.bytesPerTexel),
		RowsPerImage: uint32(height),
	}
	size := &hal.Extent3D{
		Width:              uint32(width),
		Height:             uint32(height),
		DepthOrArrayLayers: 1,
	}
	c.queue.WriteTexture(dst, data, layout, size)
}
