package runtime

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"go.dedis.ch/protobuf"
)

// Call is a decoded action: the module it targets, the function within that
// module, and the protobuf-encoded arguments.
type Call struct {
	Module   uint8
	Function uint8
	Args     []byte
}

// Encode lays a call out as [module, function, args...].
func (c Call) Encode() []byte {
	encoded := make([]byte, 0, 2+len(c.Args))
	encoded = append(encoded, c.Module, c.Function)
	return append(encoded, c.Args...)
}

func (c Call) String() string {
	return fmt.Sprintf("call(%d.%d, %d bytes)", c.Module, c.Function, len(c.Args))
}

// NewCall encodes args and builds a call for the given module function.
func NewCall(module, function uint8, args interface{}) (Call, error) {
	encoded, err := EncodeArgs(args)
	if err != nil {
		return Call{}, err
	}
	return Call{Module: module, Function: function, Args: encoded}, nil
}

// splitCall separates the header bytes from the arguments without checking
// whether the target exists.
func splitCall(encoded []byte) (Call, error) {
	if len(encoded) < 2 {
		return Call{}, errorsmod.Wrapf(ErrUndecodable, "call is %d bytes long", len(encoded))
	}
	args := make([]byte, len(encoded)-2)
	copy(args, encoded[2:])
	return Call{Module: encoded[0], Function: encoded[1], Args: args}, nil
}

// EncodeArgs encodes a pointer to an argument struct.
func EncodeArgs(args interface{}) ([]byte, error) {
	if args == nil {
		return nil, nil
	}
	encoded, err := protobuf.Encode(args)
	if err != nil {
		return nil, fmt.Errorf("encode call arguments: %w", err)
	}
	return encoded, nil
}

// DecodeArgs decodes call arguments into the struct pointed to by target.
func DecodeArgs(encoded []byte, target interface{}) error {
	if err := protobuf.Decode(encoded, target); err != nil {
		return errorsmod.Wrap(ErrUndecodable, err.Error())
	}
	return nil
}
