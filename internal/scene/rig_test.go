package scene

import (
	"reflect"
	"testing"

	"cogentcore.org/core/math32"
)

func TestNewRigIsDeterministic(t *testing.T) {
	t.Parallel()

	if a, b := NewRig(), NewRig(); !reflect.DeepEqual(a, b) {
		t.Fatalf("NewRig() differs between calls:\n%+v\n%+v", a, b)
	}
}

func TestNewRigConstants(t *testing.T) {
	t.Parallel()

	rig := NewRig()
	if rig.Root.Position != math32.Vec3(0, 0, 20) {
		t.Fatalf("root position = %v, want (0,0,20)", rig.Root.Position)
	}
	if rig.Camera.Parent != rig.Root.Name || rig.Camera.MaxZ != 640 || rig.Camera.MinZ != 1 {
		t.Fatalf("camera = %+v", rig.Camera)
	}
	if rig.Spots[0].Position.X != -20 || rig.Spots[1].Position.X != 20 {
		t.Fatalf("spot positions = %v, %v", rig.Spots[0].Position, rig.Spots[1].Position)
	}
	if rig.Spots[0].Angle != math32.Pi/5 {
		t.Fatalf("spot angle = %v, want pi/5", rig.Spots[0].Angle)
	}
	if rig.Shadow.MapSize != 2048 || rig.Shadow.FrustumEdgeFalloff != 0.1 {
		t.Fatalf("shadow = %+v", rig.Shadow)
	}
	if rig.Ground.ActiveLight != rig.Directional.Name {
		t.Fatalf("ground active light = %q, want %q", rig.Ground.ActiveLight, rig.Directional.Name)
	}
	if rig.SSAO.Ratio != 0.75 || rig.SSAO.CombineRatio != 1 {
		t.Fatalf("ssao = %+v", rig.SSAO)
	}
	if !rig.Audio.StartMuted || rig.Audio.PreservesPitch {
		t.Fatalf("audio = %+v", rig.Audio)
	}
}
