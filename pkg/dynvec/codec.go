package dynvec

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/dynvec/dynvec-go/pkg/rawbuf"
)

// encMode is the CBOR encoder mode for vector payloads.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for vector payloads.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient decoding for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// MarshalCBOR encodes the live elements as a CBOR array. Spare
// capacity is not represented.
func (v *Vector[T]) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(v.elements())
}

// UnmarshalCBOR decodes a CBOR array into the vector, replacing its
// contents. The result holds exactly the decoded elements, with
// capacity equal to size.
func (v *Vector[T]) UnmarshalCBOR(data []byte) error {
	var elems []T
	if err := decMode.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("failed to decode vector: %w", err)
	}
	v.setElements(elems)
	return nil
}

// MarshalJSON encodes the live elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.elements())
}

// UnmarshalJSON decodes a JSON array into the vector, replacing its
// contents.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("failed to decode vector: %w", err)
	}
	v.setElements(elems)
	return nil
}

// MarshalYAML encodes the live elements as a YAML sequence.
func (v *Vector[T]) MarshalYAML() (any, error) {
	return v.elements(), nil
}

// UnmarshalYAML decodes a YAML sequence into the vector, replacing its
// contents.
func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	if err := node.Decode(&elems); err != nil {
		return fmt.Errorf("failed to decode vector: %w", err)
	}
	v.setElements(elems)
	return nil
}

// elements returns the live range, normalized to an empty non-nil
// slice so encoders emit [] rather than null.
func (v *Vector[T]) elements() []T {
	elems := v.Slice()
	if elems == nil {
		elems = []T{}
	}
	return elems
}

// setElements replaces the vector's storage with a fresh allocation
// holding exactly elems.
func (v *Vector[T]) setElements(elems []T) {
	v.lazyInit()
	nb := rawbuf.New[T](len(elems))
	copyForward(nb.Data(), elems)
	v.buf.Swap(nb)
	v.size = len(elems)
}
