package duo

// Tagged is satisfied by every container in this package. It exposes the
// active variant without touching the payload, which lets generic code
// discriminate containers whose payload types it cannot name.
type Tagged interface {
	// Tag returns the tag of the active variant.
	Tag() Tag
}
