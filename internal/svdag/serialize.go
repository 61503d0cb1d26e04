package svdag

import (
	"unsafe"

	"github.com/cespare/xxhash"
	"github.com/outofforest/photon"
	"github.com/pkg/errors"
)

// NodeSize is the on-disk size of one node record: eight signed 32-bit
// child slots.
const NodeSize = int(unsafe.Sizeof(Node{}))

const headerSize = 8

// Serialize dumps the arena as a count header (unsigned 64-bit)
// followed by the raw node records, all in the host byte order. The
// image is not portable across endiannesses.
func (a *Arena) Serialize() []byte {
	count := uint64(len(a.nodes))
	buf := make([]byte, 0, headerSize+len(a.nodes)*NodeSize)
	buf = append(buf, photon.NewFromValue(&count).B...)
	if count > 0 {
		buf = append(buf, photon.SliceFromPointer[byte](unsafe.Pointer(&a.nodes[0]), len(a.nodes)*NodeSize)...)
	}
	return buf
}

// Deserialize is the inverse of Serialize. It rejects truncated images,
// count/size mismatches and out-of-range child references. The root of
// the loaded arena is the last node record.
func Deserialize(data []byte) (*Arena, error) {
	if len(data) < headerSize {
		return nil, errors.Wrapf(ErrCorruptArena, "truncated header: %d bytes", len(data))
	}
	count := *photon.FromBytes[uint64](data[:headerSize])
	payload := uint64(len(data) - headerSize)
	if payload%uint64(NodeSize) != 0 || count != payload/uint64(NodeSize) {
		return nil, errors.Wrapf(ErrCorruptArena,
			"size mismatch: %d nodes declared, %d payload bytes", count, payload)
	}

	a := &Arena{nodes: make([]Node, count)}
	if count > 0 {
		copy(photon.SliceFromPointer[byte](unsafe.Pointer(&a.nodes[0]), len(a.nodes)*NodeSize), data[headerSize:])
	}
	for i := range a.nodes {
		for _, v := range a.nodes[i].Children {
			if v.IsChild() && uint64(v) > count {
				return nil, errors.Wrapf(ErrCorruptArena,
					"node %d references %d, count %d", i, int32(v), count)
			}
		}
	}
	return a, nil
}

// Fingerprint is a fast integrity hash over the serialized image,
// logged after builds and merges and printed by the verify and info
// commands.
func (a *Arena) Fingerprint() uint64 {
	return xxhash.Sum64(a.Serialize())
}
