package types

// Layer is a collision category bitmask, mapped onto Box2D filter
// category/mask bits.
type Layer uint16

const (
	LayerWorld Layer = 1 << iota
	LayerCharacter
	LayerProjectile
	LayerTarget
	LayerTrigger

	LayerNone Layer = 0
	LayerAll  Layer = 0xFFFF
)

func (l Layer) Has(other Layer) bool {
	return l&other != 0
}

func BuildLayerMask(layers ...Layer) Layer {
	var mask Layer
	for _, layer := range layers {
		mask |= layer
	}
	return mask
}
