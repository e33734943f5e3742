package lz8s

// windowSize is the decoder's physical circular buffer capacity. The active,
// addressable portion of it is always p.mask()+1 bytes (256 or 65536); a
// fixed 65536-byte backing array covers both cases without resizing, per §4.5
// and §5's "64 KiB window in the decoder".
const windowSize = 1 << 16

// decodeState names the state-machine states from §4.5.
type decodeState int

const (
	stateReadLitLen decodeState = iota
	stateReadLitBytes
	stateReadMatchLen
	stateReadOffset
	stateCopyMatch
)

// decoder holds the cursor into the compressed input and the circular
// output window; Decode drives it field by field exactly as the wire
// format prescribes, with no lookahead beyond one field at a time.
type decoder struct {
	in  []byte
	ip  int
	p   Params
	mask int
	buf [windowSize]byte
	pos int // cumulative output count; buf is addressed via pos & mask
	out []byte
}

// Decode reverses Encode: given the exact Params used to produce src, it
// reconstructs the original byte stream. Decode trusts that src was
// produced by a conforming encoder for these Params; a stream transcoded
// under different parameters decodes to garbage or an error, never a
// silent partial match of the original (§3: the wire format carries no
// self-description). On a stream truncated inside a field or literal
// payload it returns the bytes decoded before the short read together with
// ErrUnexpectedEOF.
func Decode(src []byte, p Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	d := &decoder{in: src, p: p, mask: p.mask(), out: make([]byte, 0, len(src)*2)}
	state := stateReadLitLen

	var litLen, matchLen, off int

	for {
		switch state {
		case stateReadLitLen:
			n, ok, err := d.readLenField(d.p.MaxLLen)
			if err != nil {
				return d.out, err
			}
			if !ok {
				// Clean end of stream: nothing left to read at a record
				// boundary (§6.1's "end-of-stream is signalled by
				// end-of-input at a field boundary").
				return d.out, nil
			}
			litLen = n
			state = stateReadLitBytes

		case stateReadLitBytes:
			if err := d.copyLiteral(litLen); err != nil {
				return d.out, err
			}
			state = stateReadMatchLen

		case stateReadMatchLen:
			n, ok, err := d.readLenField(d.p.MaxMLen)
			if err != nil {
				return d.out, err
			}
			if !ok {
				return d.out, nil
			}
			matchLen = n
			if matchLen > 0 || d.p.ZeroOffset {
				state = stateReadOffset
			} else {
				state = stateCopyMatch
			}

		case stateReadOffset:
			o, ok, err := d.readOffsetField()
			if err != nil {
				return d.out, err
			}
			if !ok {
				return d.out, ErrUnexpectedEOF
			}
			off = o
			state = stateCopyMatch

		case stateCopyMatch:
			var err error
			off, err = d.copyMatch(matchLen, off)
			if err != nil {
				return d.out, err
			}
			state = stateReadLitLen
		}
	}
}

// readLenField mirrors writeLenField's encoding: one byte when bound <= 255,
// else one byte for values <= 127 or an extended two-byte form. ok is false
// with a nil error only when the stream ends exactly at this field's first
// byte, which the caller treats as a clean stream terminator rather than
// truncation; a missing second byte of the extended form is ErrUnexpectedEOF.
func (d *decoder) readLenField(bound int) (v int, ok bool, err error) {
	if d.ip >= len(d.in) {
		return 0, false, nil
	}
	b0 := d.in[d.ip]
	d.ip++

	if bound <= 255 {
		return int(b0), true, nil
	}
	if b0&0x80 == 0 {
		return int(b0), true, nil
	}
	if d.ip >= len(d.in) {
		return 0, false, ErrUnexpectedEOF
	}
	b1 := d.in[d.ip]
	d.ip++
	return int(b0&0x7F) | (int(b1)+1)<<7, true, nil
}

// readOffsetField mirrors writeOffsetField: 1 byte for bits_moff in [1,8],
// 2 bytes for bits_moff in [9,16]. The returned off is a window-space index
// (to be masked on use), not a back-distance, matching §4.5's formulas.
func (d *decoder) readOffsetField() (off int, ok bool, err error) {
	bm := d.p.BitsMOff
	if bm == 0 {
		// No offset bits means maxOff == 1: the only legal back-distance is 1.
		return d.pos - 1, true, nil
	}

	nbytes := 1
	if bm > 8 {
		nbytes = 2
	}
	if d.ip+nbytes > len(d.in) {
		return 0, false, nil
	}

	w := int(d.in[d.ip])
	if nbytes == 2 {
		w |= int(d.in[d.ip+1]) << 8
	}
	d.ip += nbytes

	if d.p.ExorOffset {
		w ^= d.mask
	}

	if d.p.OffsetRelSet {
		off = w - d.p.OffsetRel
	} else {
		off = d.pos - w + d.mask
	}
	return off, true, nil
}

// copyLiteral appends n raw bytes from the input directly into the output
// window, byte by byte so the window and out slice stay in lockstep.
func (d *decoder) copyLiteral(n int) error {
	if d.ip+n > len(d.in) {
		return ErrUnexpectedEOF
	}
	for i := 0; i < n; i++ {
		d.emit(d.in[d.ip+i])
	}
	d.ip += n
	return nil
}

// copyMatch reproduces mlen bytes read from window index off, advancing
// both off and the output cursor one byte at a time (never via a bulk
// slice copy) because off can trail pos by less than mlen: a run like
// "AAAAAAAA" encodes as a single match with offset 1, which must replay
// the byte it just wrote on the previous iteration, not data as it stood
// before the match began (§4.5). It returns the final off, discarded by
// the caller but kept symmetrical with the read/advance pattern.
func (d *decoder) copyMatch(mlen, off int) (int, error) {
	if mlen == 0 {
		return off, nil
	}
	for i := 0; i < mlen; i++ {
		b := d.buf[off&d.mask]
		d.emit(b)
		off++
	}
	return off, nil
}

// emit appends one byte to both the growable output slice and the fixed
// circular window that match back-references read from.
func (d *decoder) emit(b byte) {
	d.out = append(d.out, b)
	d.buf[d.pos&d.mask] = b
	d.pos++
}
