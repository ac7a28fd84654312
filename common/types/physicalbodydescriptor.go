package types

// BodyID identifies a physical body (and the scene node carrying it)
// across the physics world, the scene graph and the projectile core.
type BodyID string

func (id BodyID) String() string {
	return string(id)
}

// NoBody is the zero identity; it never matches a registered body.
const NoBody BodyID = ""

// PhysicalBodyDescriptor is set as UserData on Box2D Physical bodies to be able to determine collider and collidee from Box2D contact callbacks
type PhysicalBodyDescriptor struct {
	Type _physicaltype
	ID   BodyID
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Obstacle:
		return "Obstacle"
	case PhysicalBodyDescriptorType.Character:
		return "Character"
	case PhysicalBodyDescriptorType.Launcher:
		return "Launcher"
	case PhysicalBodyDescriptorType.Projectile:
		return "Projectile"
	case PhysicalBodyDescriptorType.Target:
		return "Target"
	case PhysicalBodyDescriptorType.Trigger:
		return "Trigger"
	}

	return "UnkownType"
}

var PhysicalBodyDescriptorType = struct {
	Obstacle   _physicaltype
	Character  _physicaltype
	Launcher   _physicaltype
	Projectile _physicaltype
	Target     _physicaltype
	Trigger    _physicaltype
}{
	Obstacle:   _physicaltype("o"),
	Character:  _physicaltype("c"),
	Launcher:   _physicaltype("l"),
	Projectile: _physicaltype("p"),
	Target:     _physicaltype("t"),
	Trigger:    _physicaltype("s"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id BodyID) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type: type_,
		ID:   id,
	}
}

func (d PhysicalBodyDescriptor) IsProjectile() bool {
	return d.Type == PhysicalBodyDescriptorType.Projectile
}
