// Package bcdescriptor reads the small JSON "module descriptor" that
// cmd/orizon-bc takes as input: a tree of blocks, abbreviation
// definitions and records to emit, translated one-to-one into
// internal/bitstream calls. Malformed input is reported through
// internal/bcdiag rather than panicking, since a bad descriptor is a
// client-input problem, not an encoder contract violation.
package bcdescriptor

import (
	"encoding/json"
	"fmt"

	"github.com/orizon-lang/orizon-bc/internal/bcdiag"
	"github.com/orizon-lang/orizon-bc/internal/bitstream"
)

// OperandSpec describes one OperandDef entry in JSON. Kind is one of
// "literal", "fixed", "vbr", "array", "blob", "char6".
type OperandSpec struct {
	Kind    string       `json:"kind"`
	Literal uint32       `json:"literal,omitempty"`
	Width   uint32       `json:"width,omitempty"`
	Inner   *OperandSpec `json:"inner,omitempty"`
}

// AbbrevSpec describes one abbreviation to define, either inside a
// block body or inside a blockinfo entry.
type AbbrevSpec struct {
	Name     string        `json:"name"`
	Operands []OperandSpec `json:"operands"`
}

// ValueSpec describes one OperandValue in JSON. Kind mirrors
// OperandSpec.Kind; Elements is used for "array", Bytes for "blob",
// Text for "char6" (encoded as a Char6 array of the string's bytes).
type ValueSpec struct {
	Kind     string      `json:"kind"`
	Value    uint64      `json:"value,omitempty"`
	Width    uint32      `json:"width,omitempty"`
	Elements []ValueSpec `json:"elements,omitempty"`
	Bytes    []byte      `json:"bytes,omitempty"`
	Text     string      `json:"text,omitempty"`
}

// RecordSpec is either an abbreviated record (Abbrev set) or an
// unabbreviated record (Code set).
type RecordSpec struct {
	Abbrev string      `json:"abbrev,omitempty"`
	Values []ValueSpec `json:"values,omitempty"`
	Code   *uint32     `json:"code,omitempty"`
	Fields []uint32    `json:"fields,omitempty"`
}

// BlockSpec describes one ENTER_SUBBLOCK/END_BLOCK pair, its local
// abbreviation definitions, its records, and nested child blocks, all
// emitted in declaration order.
type BlockSpec struct {
	ID          uint32       `json:"id"`
	AbbrIDWidth uint32       `json:"abbr_id_width"`
	Abbrevs     []AbbrevSpec `json:"abbrevs,omitempty"`
	Records     []RecordSpec `json:"records,omitempty"`
	Blocks      []BlockSpec  `json:"blocks,omitempty"`
}

// BlockInfoSpec installs one BLOCKINFO entry for BlockID before any
// block of that id is entered.
type BlockInfoSpec struct {
	BlockID uint32       `json:"block_id"`
	Abbrevs []AbbrevSpec `json:"abbrevs"`
}

// Module is the root of a module descriptor file.
type Module struct {
	Magic     uint32          `json:"magic"`
	BlockInfo []BlockInfoSpec `json:"blockinfo,omitempty"`
	Blocks    []BlockSpec     `json:"blocks"`
}

// Parse decodes a module descriptor from JSON, appending a diagnostic
// and returning a nil Module on malformed input.
func Parse(data []byte, diags *bcdiag.Collector) *Module {
	var m Module
	if err := json.Unmarshal(data, &m); err != nil {
		diags.Add(bcdiag.New().Error().Stage("parse").Message("invalid module descriptor: %v", err).Build())
		return nil
	}

	return &m
}

func buildOperandDef(spec OperandSpec) (bitstream.OperandDef, error) {
	switch spec.Kind {
	case "literal":
		return bitstream.LiteralOperand(spec.Literal), nil
	case "fixed":
		return bitstream.FixedOperand(spec.Width), nil
	case "vbr":
		return bitstream.VBROperand(spec.Width), nil
	case "blob":
		return bitstream.BlobOperand(), nil
	case "char6":
		return bitstream.Char6Operand(), nil
	case "array":
		if spec.Inner == nil {
			return bitstream.OperandDef{}, fmt.Errorf("array operand missing inner")
		}

		inner, err := buildOperandDef(*spec.Inner)
		if err != nil {
			return bitstream.OperandDef{}, err
		}

		return bitstream.ArrayOperand(inner), nil
	default:
		return bitstream.OperandDef{}, fmt.Errorf("unknown operand kind %q", spec.Kind)
	}
}

func buildAbbrev(spec AbbrevSpec) (*bitstream.Abbrev, error) {
	ops := make([]bitstream.OperandDef, 0, len(spec.Operands))

	for _, os := range spec.Operands {
		op, err := buildOperandDef(os)
		if err != nil {
			return nil, fmt.Errorf("abbrev %q: %w", spec.Name, err)
		}

		ops = append(ops, op)
	}

	return bitstream.NewAbbrev(spec.Name, ops), nil
}

func buildValue(spec ValueSpec) (bitstream.OperandValue, error) {
	switch spec.Kind {
	case "literal":
		return bitstream.LiteralValue(), nil
	case "vbr":
		return bitstream.VBRValue(spec.Value, spec.Width), nil
	case "fixed":
		return bitstream.FixedValue(uint32(spec.Value), spec.Width), nil
	case "blob":
		return bitstream.BlobValue(spec.Bytes), nil
	case "char6":
		if spec.Text != "" {
			return bitstream.Char6String(spec.Text), nil
		}

		return bitstream.Char6Value(byte(spec.Value)), nil
	case "array":
		elems := make([]bitstream.OperandValue, 0, len(spec.Elements))

		for _, es := range spec.Elements {
			v, err := buildValue(es)
			if err != nil {
				return bitstream.OperandValue{}, err
			}

			elems = append(elems, v)
		}

		return bitstream.ArrayValue(elems...), nil
	default:
		return bitstream.OperandValue{}, fmt.Errorf("unknown value kind %q", spec.Kind)
	}
}

// Build drives a fresh bitstream.BitStream through the descriptor and
// returns the finished buffer. It reports malformed abbreviation or
// value specs through diags and aborts before touching the stream;
// once underway, a contract violation from the bitstream package
// itself still panics with *bcerrors.Violation, since that reflects a
// descriptor that asked for something the wire format itself forbids
// (e.g. reusing an abbrev name) rather than a JSON shape error.
func Build(m *Module, diags *bcdiag.Collector) []byte {
	if err := validate(m); err != nil {
		diags.Add(bcdiag.New().Error().Stage("validate").Message("%v", err).Build())
		return nil
	}

	s := bitstream.New(m.Magic)

	if len(m.BlockInfo) > 0 {
		info := make(bitstream.BlockInfoMap, len(m.BlockInfo))

		for _, bi := range m.BlockInfo {
			abbrevs := make([]*bitstream.Abbrev, 0, len(bi.Abbrevs))

			for _, as := range bi.Abbrevs {
				a, _ := buildAbbrev(as)
				abbrevs = append(abbrevs, a)
			}

			info[bi.BlockID] = abbrevs
		}

		s.WriteBlockInfo(info)
	}

	for _, b := range m.Blocks {
		emitBlock(s, b)
	}

	return s.Finish()
}

func emitBlock(s *bitstream.BitStream, b BlockSpec) {
	s.EnterBlock(b.ID, b.AbbrIDWidth)

	for _, as := range b.Abbrevs {
		a, _ := buildAbbrev(as)
		s.DefineAbbrev(a)
	}

	for _, rs := range b.Records {
		if rs.Code != nil {
			s.WriteUnabbrevRecord(*rs.Code, rs.Fields)
			continue
		}

		values := make([]bitstream.OperandValue, 0, len(rs.Values))

		for _, vs := range rs.Values {
			v, _ := buildValue(vs)
			values = append(values, v)
		}

		s.WriteRecord(rs.Abbrev, values)
	}

	for _, child := range b.Blocks {
		emitBlock(s, child)
	}

	s.EndBlock(b.ID)
}

// validate walks the descriptor once up front so that abbreviation and
// operand shape errors surface as a bcdiag.Diagnostic instead of a
// panic from deep inside emitBlock.
func validate(m *Module) error {
	for _, bi := range m.BlockInfo {
		for _, as := range bi.Abbrevs {
			if _, err := buildAbbrev(as); err != nil {
				return fmt.Errorf("blockinfo %d: %w", bi.BlockID, err)
			}
		}
	}

	var walk func(b BlockSpec) error
	walk = func(b BlockSpec) error {
		for _, as := range b.Abbrevs {
			if _, err := buildAbbrev(as); err != nil {
				return fmt.Errorf("block %d: %w", b.ID, err)
			}
		}

		for _, rs := range b.Records {
			if rs.Code == nil {
				for _, vs := range rs.Values {
					if _, err := buildValue(vs); err != nil {
						return fmt.Errorf("block %d record %q: %w", b.ID, rs.Abbrev, err)
					}
				}
			}
		}

		for _, child := range b.Blocks {
			if err := walk(child); err != nil {
				return err
			}
		}

		return nil
	}

	for _, b := range m.Blocks {
		if err := walk(b); err != nil {
			return err
		}
	}

	return nil
}
