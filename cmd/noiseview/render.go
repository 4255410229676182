package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"litemath/pkg/heightmap"
	"litemath/pkg/vecmath"
)

const vertexSrc = `#version 410 core
layout(location = 0) in vec2 position;
uniform mat4 view;
out vec2 uv;
void main() {
	uv = position * 0.5 + 0.5;
	gl_Position = view * vec4(position, 0.0, 1.0);
}` + "\x00"

// Height is shaded from blue (low) through green to white (high).
const fragmentSrc = `#version 410 core
in vec2 uv;
uniform sampler2D heights;
out vec4 fragColor;
void main() {
	float h = texture(heights, uv).r;
	vec3 low = vec3(0.05, 0.15, 0.45);
	vec3 mid = vec3(0.20, 0.55, 0.20);
	vec3 high = vec3(0.95, 0.95, 0.95);
	vec3 c = h < 0.5 ? mix(low, mid, h * 2.0) : mix(mid, high, h * 2.0 - 1.0);
	fragColor = vec4(c, 1.0);
}` + "\x00"

// quad draws a single normalized grid as a fullscreen textured quad.
type quad struct {
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	viewLoc int32
}

func newQuad() (*quad, error) {
	program, err := newProgram(glShaders{}, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	q := &quad{program: program}

	// two triangles covering NDC
	vertices := []float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &q.tex)
	gl.BindTexture(gl.TEXTURE_2D, q.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.UseProgram(program)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("heights\x00")), 0)
	q.viewLoc = gl.GetUniformLocation(program, gl.Str("view\x00"))
	q.setView(vecmath.Mat4Identity)
	return q, nil
}

// upload replaces the texture contents with the normalized grid.
func (q *quad) upload(g *heightmap.Grid) {
	n := g.Normalized()
	pix := make([]float32, len(n.Data))
	for i, v := range n.Data {
		pix[i] = float32(v)
	}
	gl.BindTexture(gl.TEXTURE_2D, q.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, int32(n.Width), int32(n.Height), 0, gl.RED, gl.FLOAT, gl.Ptr(pix))
}

func (q *quad) setView(m vecmath.Mat4) {
	gl.UseProgram(q.program)
	gl.UniformMatrix4fv(q.viewLoc, 1, false, &m[0])
}

func (q *quad) draw() {
	gl.UseProgram(q.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, q.tex)
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (q *quad) delete() {
	gl.DeleteTextures(1, &q.tex)
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
	gl.DeleteProgram(q.program)
}

// shaderAPI is the slice of GL that newProgram drives.
type shaderAPI interface {
	compile(src string, kind uint32) (uint32, error)
	link(v, f uint32) (uint32, error)
	deleteShader(id uint32)
}

// newProgram compiles shaders and links them into a program. Shaders are
// released on every path.
func newProgram(api shaderAPI, vertexSrc, fragmentSrc string) (uint32, error) {
	v, err := api.compile(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer api.deleteShader(v)

	f, err := api.compile(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer api.deleteShader(f)

	return api.link(v, f)
}

type glShaders struct{}

func (glShaders) deleteShader(id uint32) { gl.DeleteShader(id) }

func (glShaders) compile(src string, kind uint32) (uint32, error) {
	s := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(s, logLength, nil, &log[0])
		gl.DeleteShader(s)
		return 0, fmt.Errorf("compile error: %s", string(log))
	}
	return s, nil
}

// link deletes the program if linking fails; the caller owns v and f.
func (glShaders) link(v, f uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, v)
	gl.AttachShader(program, f)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("program link error: %s", string(log))
	}
	return program, nil
}
