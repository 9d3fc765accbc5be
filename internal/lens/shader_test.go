package lens

import (
	"strings"
	"testing"
)

func TestDistortionShaderCompiles(t *testing.T) {
	d, err := NewDistortion()
	if err != nil {
		t.Fatalf("shader failed to compile: %v", err)
	}
	d.Dispose()
}

// Apply uploads uniforms by name; a rename in the Kage source without a
// matching change in Apply would silently render with zero-valued uniforms.
func TestDistortionShaderDeclaresUniforms(t *testing.T) {
	for _, name := range []string{"Mass", "Spin", "Anchor", "Resolution"} {
		if !strings.Contains(distortionSrc, "var "+name+" ") {
			t.Errorf("shader source does not declare uniform %s", name)
		}
	}
}
