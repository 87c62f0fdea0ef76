package component

import "github.com/go-gl/mathgl/mgl64"

// SpringArmSocket is the attachment point at the end of a camera boom.
const SpringArmSocket = "SpringEndpoint"

// FollowCamera is the view attached to the end of a camera boom.
type FollowCamera struct {
	Socket                 string
	UsePawnControlRotation bool
	FOV                    float64

	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

// CameraBoom positions its camera behind the character and pulls it in when
// something blocks the arm. The boom owns its camera.
type CameraBoom struct {
	TargetArmLength        float64
	UsePawnControlRotation bool
	DoCollisionTest        bool
	ProbeRadius            float64
	SocketOffset           mgl64.Vec3

	// CurrentArmLength is TargetArmLength shortened by the collision probe.
	CurrentArmLength float64
	Pivot            mgl64.Vec3

	Camera *FollowCamera
}

// NewCameraBoom returns a boom that owns a freshly attached camera.
func NewCameraBoom(armLength float64) *CameraBoom {
	return &CameraBoom{
		TargetArmLength:        armLength,
		UsePawnControlRotation: true,
		DoCollisionTest:        true,
		ProbeRadius:            12,
		CurrentArmLength:       armLength,
		Camera: &FollowCamera{
			Socket: SpringArmSocket,
			FOV:    90,
		},
	}
}

var CameraBoomComponent = NewComponent[CameraBoom]()
