// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"math"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"squirrel/crc"
)

// Encoded state uses the protobuf wire format:
//
//	1: seed, sint32
//	2: position, sint32
//	3: CRC-16/CCITT of fields 1 and 2 as MarshalBinary writes them, uint32
//
// Fields 1 to 3 must be varints and field 3 is required.
const (
	seedField     protowire.Number = 1
	positionField protowire.Number = 2
	checksumField protowire.Number = 3
)

var (
	ErrChecksum        = errors.New("generator state checksum mismatch")
	ErrMissingChecksum = errors.New("generator state has no checksum")
)

func appendSint32(b []byte, num protowire.Number, v int32) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v)))
}

func (g *Generator) appendFields(b []byte) []byte {
	b = appendSint32(b, seedField, g.seed)
	return appendSint32(b, positionField, g.pos)
}

// MarshalBinary encodes seed and position.
func (g *Generator) MarshalBinary() ([]byte, error) {
	b := g.appendFields(nil)
	sum := crc.Sum16(b)
	b = protowire.AppendTag(b, checksumField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(sum))
	return b, nil
}

// UnmarshalBinary restores a state written by MarshalBinary. Unknown fields
// are skipped and an absent seed or position is zero. The checksum is
// recomputed from the decoded seed and position, so any change to them is
// detected wherever the fields sit in the record.
func (g *Generator) UnmarshalBinary(data []byte) error {
	var (
		st     Generator
		sum    uint64
		hasSum bool
	)
	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "generator state")
		}
		b = b[n:]
		if num > checksumField {
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return errors.Wrapf(protowire.ParseError(m), "generator state field %d", num)
			}
			b = b[m:]
			continue
		}
		if typ != protowire.VarintType {
			return errors.Errorf("generator state field %d has wire type %d, want varint", num, typ)
		}
		v, m := protowire.ConsumeVarint(b)
		if m < 0 {
			return errors.Wrapf(protowire.ParseError(m), "generator state field %d", num)
		}
		b = b[m:]
		switch num {
		case seedField, positionField:
			x := protowire.DecodeZigZag(v)
			if x < math.MinInt32 || x > math.MaxInt32 {
				return errors.Errorf("generator state field %d out of range: %d", num, x)
			}
			if num == seedField {
				st.seed = int32(x)
			} else {
				st.pos = int32(x)
			}
		case checksumField:
			sum, hasSum = v, true
		}
	}
	if !hasSum {
		return ErrMissingChecksum
	}
	if sum != uint64(crc.Sum16(st.appendFields(nil))) {
		return ErrChecksum
	}
	*g = st
	return nil
}
