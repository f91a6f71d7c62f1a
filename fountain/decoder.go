package fountain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fountaincodec/ur/internal/crc32util"
)

// workingPart is a part mid-reduction: its index set shrinks as known
// fragments and other mixed parts are XOR-ed out of it.
type workingPart struct {
	indexes FragmentSet
	data    []byte
}

// Decoder reassembles a message from an arbitrarily ordered,
// possibly duplicated or incomplete stream of Parts via
// Gaussian-elimination-style reduction: every part that is not yet a
// pure fragment is reduced against every known fragment and every
// other still-mixed part until it either becomes pure or stabilizes.
type Decoder struct {
	headerSet  bool
	seqLen     int
	messageLen int
	checksum   uint32

	fragments  map[int][]byte
	mixedParts map[string]*workingPart
	queue      []*workingPart

	result    []byte
	resultErr error
}

// NewDecoder returns an empty Decoder, ready to receive parts.
func NewDecoder() *Decoder {
	return &Decoder{}
}

func setKey(s FragmentSet) string {
	indexes := make([]int, 0, len(s))
	for i := range s {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	strs := make([]string, len(indexes))
	for i, idx := range indexes {
		strs[i] = strconv.Itoa(idx)
	}
	return strings.Join(strs, ",")
}

func cloneSet(s FragmentSet) FragmentSet {
	out := make(FragmentSet, len(s))
	for i := range s {
		out[i] = struct{}{}
	}
	return out
}

// isProperSubset reports whether a is a non-empty proper subset of b.
func isProperSubset(a, b FragmentSet) bool {
	if len(a) == 0 || len(a) >= len(b) {
		return false
	}
	for i := range a {
		if _, ok := b[i]; !ok {
			return false
		}
	}
	return true
}

func subtract(a, b FragmentSet) {
	for i := range b {
		delete(a, i)
	}
}

func singleIndex(s FragmentSet) int {
	for i := range s {
		return i
	}
	return -1
}

// ReceivePart folds one received part into the decoder's state. It
// never returns an error for a merely-redundant or partially-useful
// part; errors are reserved for header mismatches, and are also
// latched into Result.
func (d *Decoder) ReceivePart(p *Part) error {
	if d.IsComplete() {
		return nil
	}

	if !d.headerSet {
		d.seqLen = int(p.SeqLen)
		d.messageLen = int(p.MessageLen)
		d.checksum = p.Checksum
		d.fragments = make(map[int][]byte, d.seqLen)
		d.mixedParts = make(map[string]*workingPart)
		d.headerSet = true
	} else if int(p.SeqLen) != d.seqLen || int(p.MessageLen) != d.messageLen || p.Checksum != d.checksum {
		d.resultErr = newError(InconsistentPart, "part %d disagrees with established header", p.SeqNum)
		return d.resultErr
	}

	indexes := ChooseFragments(p.SeqNum, d.seqLen, d.checksum)
	wp := &workingPart{indexes: indexes, data: append([]byte(nil), p.Data...)}

	d.reduceAgainstFragments(wp)
	d.dispatch(wp)
	d.drainQueue()
	d.finalize()
	return nil
}

func (d *Decoder) reduceAgainstFragments(wp *workingPart) {
	for idx, frag := range d.fragments {
		if _, ok := wp.indexes[idx]; ok {
			xorInto(wp.data, frag)
			delete(wp.indexes, idx)
		}
	}
}

func (d *Decoder) dispatch(wp *workingPart) {
	switch len(wp.indexes) {
	case 0:
		return
	case 1:
		d.queue = append(d.queue, wp)
		return
	}

	for changed := true; changed && len(wp.indexes) > 1; {
		changed = false
		for key, other := range d.mixedParts {
			switch {
			case isProperSubset(other.indexes, wp.indexes):
				xorInto(wp.data, other.data)
				subtract(wp.indexes, other.indexes)
				changed = true
			case isProperSubset(wp.indexes, other.indexes):
				xorInto(other.data, wp.data)
				subtract(other.indexes, wp.indexes)
				delete(d.mixedParts, key)
				d.storeOrQueue(other)
				changed = true
			}
			if len(wp.indexes) <= 1 {
				break
			}
		}
	}
	d.storeOrQueue(wp)
}

func (d *Decoder) storeOrQueue(wp *workingPart) {
	switch len(wp.indexes) {
	case 0:
		return
	case 1:
		d.queue = append(d.queue, wp)
	default:
		d.mixedParts[setKey(wp.indexes)] = wp
	}
}

func (d *Decoder) drainQueue() {
	for len(d.queue) > 0 {
		wp := d.queue[0]
		d.queue = d.queue[1:]

		idx := singleIndex(wp.indexes)
		if _, known := d.fragments[idx]; known {
			continue
		}
		d.fragments[idx] = wp.data

		for key, other := range d.mixedParts {
			if _, ok := other.indexes[idx]; !ok {
				continue
			}
			xorInto(other.data, wp.data)
			delete(other.indexes, idx)
			delete(d.mixedParts, key)
			d.storeOrQueue(other)
		}
	}
}

func (d *Decoder) finalize() {
	if d.resultErr != nil || d.result != nil {
		return
	}
	if !d.headerSet || len(d.fragments) != d.seqLen {
		return
	}

	var message []byte
	for i := 0; i < d.seqLen; i++ {
		frag, ok := d.fragments[i]
		if !ok {
			return
		}
		message = append(message, frag...)
	}
	message = message[:d.messageLen]

	if crc32util.Int(message) != d.checksum {
		d.resultErr = newError(MessageChecksumMismatch, "reassembled message does not match expected checksum")
		return
	}
	d.result = message
}

// IsComplete reports whether the decoder has reached a terminal state
// (success or failure).
func (d *Decoder) IsComplete() bool {
	return d.result != nil || d.resultErr != nil
}

// IsSuccess reports whether the decoder finished successfully.
func (d *Decoder) IsSuccess() bool {
	return d.result != nil
}

// Result returns the reassembled message, or the terminal error if
// decoding failed. Both are nil until IsComplete returns true.
func (d *Decoder) Result() ([]byte, error) {
	return d.result, d.resultErr
}

// JoinFragments concatenates fragments in order and truncates to
// messageLen. It exists independently of Decoder so tests (and
// streaming encoders) can verify partitioning without running a full
// receive loop.
func JoinFragments(fragments [][]byte, messageLen int) []byte {
	var buf []byte
	for _, f := range fragments {
		buf = append(buf, f...)
	}
	return buf[:messageLen]
}

// SeqNumFor searches for the smallest seqNum whose ChooseFragments
// output equals the given fragment set, the inverse of the forward
// selection function. It is useful for diagnostics and tests, not the
// encode/decode hot path.
func SeqNumFor(seqLen int, checksum uint32, fragments FragmentSet) uint32 {
	want := setKey(fragments)
	for seqNum := uint32(1); ; seqNum++ {
		if setKey(ChooseFragments(seqNum, seqLen, checksum)) == want {
			return seqNum
		}
	}
}
