package scene

import "cogentcore.org/core/math32"

// Transform is a named node with a position relative to its parent.
type Transform struct {
	Name     string         `json:"name"`
	Parent   string         `json:"parent,omitempty"`
	Position math32.Vector3 `json:"position"`
}

// CameraRig is the camera that the camera motion track drives.
type CameraRig struct {
	Transform
	MaxZ    float32 `json:"maxZ"`
	MinZ    float32 `json:"minZ"`
	Inertia float32 `json:"inertia"`
}

// HemisphericLight is the soft fill light.
type HemisphericLight struct {
	Name        string         `json:"name"`
	Direction   math32.Vector3 `json:"direction"`
	Intensity   float32        `json:"intensity"`
	Diffuse     math32.Vector3 `json:"diffuse"`
	GroundColor math32.Vector3 `json:"groundColor"`
}

// DirectionalLight is the key light and the only shadow caster for the ground.
type DirectionalLight struct {
	Name                  string         `json:"name"`
	Direction             math32.Vector3 `json:"direction"`
	Intensity             float32        `json:"intensity"`
	Diffuse               math32.Vector3 `json:"diffuse"`
	AutoCalcShadowZBounds bool           `json:"autoCalcShadowZBounds"`
	AutoUpdateExtends     bool           `json:"autoUpdateExtends"`
}

// SpotLight is one of the two front spots.
type SpotLight struct {
	Transform
	Direction     math32.Vector3 `json:"direction"`
	Angle         float32        `json:"angle"`
	Exponent      float32        `json:"exponent"`
	Intensity     float32        `json:"intensity"`
	Diffuse       math32.Vector3 `json:"diffuse"`
	Specular      math32.Vector3 `json:"specular"`
	ShadowEnabled bool           `json:"shadowEnabled"`
}

// GroundRig is the shadow-only floor.
type GroundRig struct {
	Name           string  `json:"name"`
	Parent         string  `json:"parent"`
	Width          float32 `json:"width"`
	Height         float32 `json:"height"`
	Subdivisions   int     `json:"subdivisions"`
	Alpha          float32 `json:"alpha"`
	ActiveLight    string  `json:"activeLight"`
	ReceiveShadows bool    `json:"receiveShadows"`
}

// ShadowRig configures the shadow generator on the directional light.
type ShadowRig struct {
	Light                 string  `json:"light"`
	MapSize               int     `json:"mapSize"`
	PercentageCloser      bool    `json:"percentageCloser"`
	TransparencyShadow    bool    `json:"transparencyShadow"`
	ForceBackFacesOnly    bool    `json:"forceBackFacesOnly"`
	FrustumEdgeFalloff    float32 `json:"frustumEdgeFalloff"`
	CharacterCastsShadows bool    `json:"characterCastsShadows"`
	StageReceivesShadows  bool    `json:"stageReceivesShadows"`
}

// SSAORig configures the ambient occlusion pass.
type SSAORig struct {
	Name         string  `json:"name"`
	Ratio        float32 `json:"ratio"`
	CombineRatio float32 `json:"combineRatio"`
}

// AudioRig configures the streamed soundtrack.
type AudioRig struct {
	PreservesPitch bool `json:"preservesPitch"`
	StartMuted     bool `json:"startMuted"`
}

// Rig is the fixed set of scene objects built around the loaded assets.
type Rig struct {
	ClearColor   math32.Vector4   `json:"clearColor"`
	AmbientColor math32.Vector3   `json:"ambientColor"`
	Root         Transform        `json:"root"`
	Camera       CameraRig        `json:"camera"`
	Hemispheric  HemisphericLight `json:"hemispheric"`
	Directional  DirectionalLight `json:"directional"`
	Spots        [2]SpotLight     `json:"spots"`
	Ground       GroundRig        `json:"ground"`
	Shadow       ShadowRig        `json:"shadow"`
	SSAO         SSAORig          `json:"ssao"`
	Audio        AudioRig         `json:"audio"`
}

const rootName = "mmdRoot"

var lightBlue = math32.Vec3(0.69, 0.79, 0.89)

// NewRig returns the rig. Every call yields an identical value.
func NewRig() Rig {
	spot := func(name string, x, dirX float32) SpotLight {
		return SpotLight{
			Transform:     Transform{Name: name, Parent: rootName, Position: math32.Vec3(x, 40, -50)},
			Direction:     math32.Vec3(dirX, -0.5, 0.8),
			Angle:         math32.Pi / 5,
			Exponent:      2,
			Intensity:     0.44,
			Diffuse:       math32.Vec3(0.98, 0.99, 1),
			Specular:      math32.Vec3(0.2, 0.2, 0.2),
			ShadowEnabled: true,
		}
	}
	return Rig{
		ClearColor:   math32.Vec4(0.957, 0.961, 0.969, 1),
		AmbientColor: math32.Vec3(0.3, 0.3, 0.3),
		Root:         Transform{Name: rootName, Position: math32.Vec3(0, 0, 20)},
		Camera: CameraRig{
			Transform: Transform{Name: "mmdCamera", Parent: rootName, Position: math32.Vec3(0, 10, 0)},
			MaxZ:      640,
			MinZ:      1,
			Inertia:   0.8,
		},
		Hemispheric: HemisphericLight{
			Name:        "ambientLight",
			Direction:   math32.Vec3(0, 1, 0),
			Intensity:   0.125,
			Diffuse:     lightBlue,
			GroundColor: math32.Vec3(0.4, 0.4, 0.4),
		},
		Directional: DirectionalLight{
			Name:      "directionalLight",
			Direction: math32.Vec3(0.5, -1, 1),
			Intensity: 0.33,
			Diffuse:   lightBlue,
		},
		Spots: [2]SpotLight{
			spot("leftSpotLight", -20, 0.5),
			spot("rightSpotLight", 20, -0.5),
		},
		Ground: GroundRig{
			Name:           "ground1",
			Parent:         rootName,
			Width:          100,
			Height:         100,
			Subdivisions:   2,
			Alpha:          0.4,
			ActiveLight:    "directionalLight",
			ReceiveShadows: true,
		},
		Shadow: ShadowRig{
			Light:                 "directionalLight",
			MapSize:               2048,
			PercentageCloser:      true,
			TransparencyShadow:    true,
			ForceBackFacesOnly:    true,
			FrustumEdgeFalloff:    0.1,
			CharacterCastsShadows: true,
			StageReceivesShadows:  true,
		},
		SSAO:  SSAORig{Name: "ssaoPipeline", Ratio: 0.75, CombineRatio: 1.0},
		Audio: AudioRig{PreservesPitch: false, StartMuted: true},
	}
}
