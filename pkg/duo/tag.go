package duo

import "fmt"

// Tag identifies the active variant of a container. The values are distinct
// across all three container types, so generic code can switch on a Tag
// without knowing which container produced it.
type Tag uint8

const (
	TagNone Tag = iota
	TagSome
	TagErr
	TagOk
	TagLeft
	TagRight
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "None"
	case TagSome:
		return "Some"
	case TagErr:
		return "Err"
	case TagOk:
		return "Ok"
	case TagLeft:
		return "Left"
	case TagRight:
		return "Right"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}
