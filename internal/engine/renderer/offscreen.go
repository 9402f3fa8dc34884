package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// offscreen is a color + depth render target used for screenshots larger
// than the window.
type offscreen struct {
	fbo    uint32
	color  uint32
	depth  uint32
	width  int32
	height int32
}

func newOffscreen(width, height int32) (*offscreen, error) {
	o := &offscreen{width: max(width, 1), height: max(height, 1)}

	gl.GenFramebuffers(1, &o.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)

	gl.GenTextures(1, &o.color)
	gl.GenRenderbuffers(1, &o.depth)
	o.allocate()
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, o.color, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, o.depth)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		o.destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return o, nil
}

// allocate (re)creates attachment storage at the current size.
func (o *offscreen) allocate() {
	gl.BindTexture(gl.TEXTURE_2D, o.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, o.width, o.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindRenderbuffer(gl.RENDERBUFFER, o.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, o.width, o.height)
}

func (o *offscreen) resize(width, height int32) {
	width, height = max(width, 1), max(height, 1)
	if width == o.width && height == o.height {
		return
	}
	o.width, o.height = width, height
	o.allocate()
}

// bind makes o the render target and returns a func restoring the previous
// framebuffer and viewport.
func (o *offscreen) bind() func() {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, o.fbo)
	gl.Viewport(0, 0, o.width, o.height)

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// readPixels returns the color attachment as RGBA, bottom row first. o must
// be bound.
func (o *offscreen) readPixels() []byte {
	pixels := make([]byte, int(o.width)*int(o.height)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, o.width, o.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func (o *offscreen) destroy() {
	if o.fbo != 0 {
		gl.DeleteFramebuffers(1, &o.fbo)
		o.fbo = 0
	}
	if o.color != 0 {
		gl.DeleteTextures(1, &o.color)
		o.color = 0
	}
	if o.depth != 0 {
		gl.DeleteRenderbuffers(1, &o.depth)
		o.depth = 0
	}
}
