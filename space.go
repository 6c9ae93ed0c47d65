package workspace

// Space identifies one of the independent memory spaces a workspace spans.
type Space uint32

const (
	// SpaceHost is regular pageable host memory.
	SpaceHost Space = iota
	// SpacePinned is page-locked host memory suitable for DMA transfers.
	SpacePinned
	// SpaceDevice is device-resident memory.
	SpaceDevice
)

var spaceNames = map[Space]string{
	SpaceHost:   "host",
	SpacePinned: "pinned",
	SpaceDevice: "device",
}

func (s Space) String() string {
	if name, ok := spaceNames[s]; ok {
		return name
	}
	return "unknown"
}

// Spaces lists all memory spaces in release order: host first, then pinned,
// then device. Rollback and normal release both walk this order so the two
// paths behave identically.
var Spaces = [3]Space{SpaceHost, SpacePinned, SpaceDevice}
