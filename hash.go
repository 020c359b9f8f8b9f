package deep

import (
	"encoding/binary"
	"hash/maphash"
	"reflect"
	"regexp"
	"time"

	"github.com/signadot/tony-format/deep/value"
)

// Hash returns a structural hash of v such that Equal(a, b) implies
// Hash(a) == Hash(b) on the same engine. Hashes are seeded per engine and
// are not stable across processes.
//
// Values of a type with a user registered equal handler hash by type only.
func (e *Engine) Hash(v any) uint64 {
	var h maphash.Hash
	h.SetSeed(e.seed)
	t := reflect.TypeOf(v)
	if t == nil {
		h.WriteByte(0)
		return h.Sum64()
	}
	h.WriteString(t.String())
	if e.isCoarse(t) {
		return h.Sum64()
	}

	switch x := v.(type) {
	case time.Time:
		writeUint64(&h, uint64(x.Unix()))
		writeUint64(&h, uint64(x.Nanosecond()))
	case *regexp.Regexp:
		if x != nil {
			h.WriteString(x.String())
		}
	case map[string]any:
		// order independent: sum of entry hashes
		var sum uint64
		for k, xv := range x {
			var eh maphash.Hash
			eh.SetSeed(e.seed)
			eh.WriteString(k)
			writeUint64(&eh, e.Hash(xv))
			sum += eh.Sum64()
		}
		writeUint64(&h, uint64(len(x)))
		writeUint64(&h, sum)
	case []any:
		writeUint64(&h, uint64(len(x)))
		for _, xv := range x {
			writeUint64(&h, e.Hash(xv))
		}
	case *value.Map:
		var sum uint64
		for k, xv := range x.All() {
			var eh maphash.Hash
			eh.SetSeed(e.seed)
			writeUint64(&eh, e.Hash(k))
			writeUint64(&eh, e.Hash(xv))
			sum += eh.Sum64()
		}
		writeUint64(&h, uint64(x.Len()))
		writeUint64(&h, sum)
	case *value.Set:
		var sum uint64
		for xv := range x.All() {
			sum += e.Hash(xv)
		}
		writeUint64(&h, uint64(x.Len()))
		writeUint64(&h, sum)
	default:
		// Identical values share an identity key. Values without one hash
		// by type alone.
		if k, ok := value.IdentityKey(v); ok {
			writeUint64(&h, maphash.Comparable(e.seed, k))
		}
	}
	return h.Sum64()
}

func writeUint64(h *maphash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}
